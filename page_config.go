package paging

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultPageSize is the page size NewPageConfig applies when neither
	// first nor last is requested.
	DefaultPageSize = 50

	// DefaultMaxPageSize is the maximum page size NewPageConfig allows.
	// This protects against resource exhaustion from unreasonably large page requests.
	DefaultMaxPageSize = 1000
)

// PageConfig holds page size limits applied before argument resolution.
// The zero value applies no default and no maximum, leaving PageArgs untouched.
// Use NewPageConfig() for the conventional 50/1000 limits, then customize
// using the With* methods.
//
// Example:
//
//	config := paging.NewPageConfig().WithMaxSize(500)
//	if err := config.Validate(args); err != nil {
//	    return nil, err
//	}
type PageConfig struct {
	// DefaultSize is used as `first` when the request carries no first, last
	// or before argument. Zero disables the default.
	DefaultSize int

	// MaxSize is the maximum allowed `first` or `last`. Requests exceeding
	// it are rejected with a PageSizeError. Zero disables the check.
	MaxSize int
}

// NewPageConfig creates a PageConfig with sensible defaults:
// - DefaultSize: 50
// - MaxSize: 1000
func NewPageConfig() *PageConfig {
	return &PageConfig{
		DefaultSize: DefaultPageSize,
		MaxSize:     DefaultMaxPageSize,
	}
}

// WithDefaultSize sets the default page size and returns the config for chaining.
func (c *PageConfig) WithDefaultSize(size int) *PageConfig {
	if size > 0 {
		c.DefaultSize = size
	}
	return c
}

// WithMaxSize sets the maximum page size and returns the config for chaining.
func (c *PageConfig) WithMaxSize(size int) *PageConfig {
	if size > 0 {
		c.MaxSize = size
	}
	return c
}

// Validate returns a PageSizeError when first or last exceeds MaxSize.
func (c *PageConfig) Validate(args PageArgs) error {
	if c == nil || c.MaxSize <= 0 {
		return nil
	}

	if args.First.Valid && args.First.Int > c.MaxSize {
		return &PageSizeError{Arg: "first", Requested: args.First.Int, Maximum: c.MaxSize}
	}

	if args.Last.Valid && args.Last.Int > c.MaxSize {
		return &PageSizeError{Arg: "last", Requested: args.Last.Int, Maximum: c.MaxSize}
	}

	return nil
}

// Apply returns args with DefaultSize filled in as `first` when the request
// has no first, last or before argument. A lone `before` is left alone since
// it already means "everything before the cursor".
func (c *PageConfig) Apply(args PageArgs) PageArgs {
	if c == nil || c.DefaultSize <= 0 {
		return args
	}

	if args.First.Valid || args.Last.Valid || args.Before.Valid {
		return args
	}

	return *WithFirst(&args, c.DefaultSize)
}

// PageSizeError is returned when the requested page size exceeds the maximum allowed.
type PageSizeError struct {
	Arg       string
	Requested int
	Maximum   int
}

func (e *PageSizeError) Error() string {
	return fmt.Sprintf("requested %s %d exceeds maximum allowed page size of %d",
		e.Arg, e.Requested, e.Maximum)
}

// PaginateOption configures a Paginator.
//
// Example:
//
//	p := paging.NewPaginator("artist", repo, artistID,
//	    paging.WithMaxSize(100),
//	    paging.WithDefaultSize(25),
//	)
type PaginateOption func(*paginateConfig)

type paginateConfig struct {
	page   PageConfig
	logger logrus.FieldLogger
}

// WithMaxSize rejects requests whose first or last exceeds size.
func WithMaxSize(size int) PaginateOption {
	return func(c *paginateConfig) {
		c.page.WithMaxSize(size)
	}
}

// WithDefaultSize applies size as `first` to requests without a page size.
func WithDefaultSize(size int) PaginateOption {
	return func(c *paginateConfig) {
		c.page.WithDefaultSize(size)
	}
}

// WithLogger sets the logger used for debug tracing of resolved queries.
func WithLogger(logger logrus.FieldLogger) PaginateOption {
	return func(c *paginateConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func applyPaginateOptions(opts ...PaginateOption) *paginateConfig {
	cfg := &paginateConfig{logger: discardLogger()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
