package sqlboiler

import (
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"
	"github.com/nrfta/relay-paging"
)

// DescriptorToQueryMods converts a QueryDescriptor into SQLBoiler query mods
// over a single unique, ordered key column.
//
// The conversion follows these rules:
//   - CursorRef, forward → qm.Where("key > ?", id), ORDER BY key
//   - CursorRef, backward → qm.Where("key < ?", id), ORDER BY key DESC
//   - Skip 0 with a cursor makes the comparison inclusive (>=, <=); Skip
//     beyond 1 becomes an OFFSET
//   - Skip without a cursor → qm.Offset(n)
//   - Limit → qm.Limit(|n|); unset or UnboundedBackwardLimit adds no LIMIT
//
// Backward queries return rows in descending key order; Store reverses them.
//
// Requirements:
//   - PostgreSQL identifier quoting (double quotes)
//   - An index on the key column
func DescriptorToQueryMods(key string, query paging.QueryDescriptor) []qm.QueryMod {
	mods := []qm.QueryMod{}
	col := strmangle.IdentQuote('"', '"', key)
	backward := query.IsBackward()
	skip := query.SkipCount()

	if query.CursorRef != nil {
		mods = append(mods, qm.Where(col+" "+comparison(backward, skip)+" ?", query.CursorRef.ID))
		if skip > 1 {
			mods = append(mods, qm.Offset(skip-1))
		}
	} else if skip > 0 {
		mods = append(mods, qm.Offset(skip))
	}

	if take, bounded := query.Take(); bounded {
		mods = append(mods, qm.Limit(take))
	}

	if backward {
		mods = append(mods, qm.OrderBy(col+" DESC"))
	} else {
		mods = append(mods, qm.OrderBy(col))
	}

	return mods
}

// comparison picks the keyset operator. A positive skip excludes the
// cursor's own row.
func comparison(backward bool, skip int) string {
	switch {
	case backward && skip > 0:
		return "<"
	case backward:
		return "<="
	case skip > 0:
		return ">"
	default:
		return ">="
	}
}
