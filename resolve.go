package paging

import (
	"math"

	"github.com/aarondl/null/v8"
)

// ResolveArgs translates Relay connection arguments into a QueryDescriptor.
//
// Checks run in order and the first failure is returned:
//  1. first and last together: ConflictingLimitArgs
//  2. no argument at all: empty descriptor, no pagination applied
//  3. after with last: UnsupportedAfterWithLast
//  4. before with first: UnsupportedBeforeWithFirst
//  5. before alone: everything before the cursor (UnboundedBackwardLimit)
//  6. otherwise limit, cursor and skip are resolved independently
//
// Combinations 3 and 4 would need the fetched window sliced after the fact,
// which a single descriptor cannot express.
func ResolveArgs(args PageArgs) (QueryDescriptor, error) {
	if args.First.Valid && args.Last.Valid {
		return QueryDescriptor{}, newArgError(ConflictingLimitArgs, "last", args.Last.Int)
	}

	if args.IsEmpty() {
		return QueryDescriptor{}, nil
	}

	if args.After.Valid && args.Last.Valid {
		return QueryDescriptor{}, newArgError(UnsupportedAfterWithLast, "last", args.Last.Int)
	}

	if args.Before.Valid && args.First.Valid {
		return QueryDescriptor{}, newArgError(UnsupportedBeforeWithFirst, "first", args.First.Int)
	}

	if args.Before.Valid && !args.After.Valid && !args.Last.Valid {
		return QueryDescriptor{
			CursorRef: &CursorRef{ID: DecodeCursor(args.Before.String)},
			Limit:     null.IntFrom(UnboundedBackwardLimit),
			Skip:      null.IntFrom(1),
		}, nil
	}

	limit, err := resolveLimit(args.First, args.Last)
	if err != nil {
		return QueryDescriptor{}, err
	}

	cursorRef, err := resolveCursor(args.Before, args.After)
	if err != nil {
		return QueryDescriptor{}, err
	}

	return QueryDescriptor{
		CursorRef: cursorRef,
		Limit:     limit,
		Skip:      resolveSkip(cursorRef),
	}, nil
}

// resolveLimit adds one peek record to `first` so the assembler can detect a
// next page without a second query. The peek saturates at math.MaxInt so a
// forward limit never wraps into UnboundedBackwardLimit. `last` turns into a
// negative limit.
func resolveLimit(first, last null.Int) (null.Int, error) {
	if first.Valid {
		if first.Int < 0 {
			return null.Int{}, newArgError(NegativeLimitArg, "first", first.Int)
		}
		if first.Int == math.MaxInt {
			return null.IntFrom(math.MaxInt), nil
		}
		return null.IntFrom(first.Int + 1), nil
	}

	if last.Valid {
		if last.Int < 0 {
			return null.Int{}, newArgError(NegativeLimitArg, "last", last.Int)
		}
		if last.Int == 0 {
			return null.IntFrom(0), nil
		}
		return null.IntFrom(-last.Int), nil
	}

	return null.Int{}, nil
}

func resolveCursor(before, after null.String) (*CursorRef, error) {
	if before.Valid && after.Valid {
		return nil, newArgError(ConflictingCursorArgs, "after", after.String)
	}

	if before.Valid {
		return &CursorRef{ID: DecodeCursor(before.String)}, nil
	}

	if after.Valid {
		return &CursorRef{ID: DecodeCursor(after.String)}, nil
	}

	return nil, nil
}

func resolveSkip(cursorRef *CursorRef) null.Int {
	if cursorRef != nil {
		return null.IntFrom(1)
	}
	return null.Int{}
}
