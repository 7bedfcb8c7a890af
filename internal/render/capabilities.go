package render

// PlaceholderStyle is the positional parameter syntax a driver accepts.
type PlaceholderStyle int

const (
	PlaceholderQuestion PlaceholderStyle = iota // ?
	PlaceholderDollar                           // $1, $2, ...
	PlaceholderAtP                              // @p1, @p2, ...
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	Placeholder         PlaceholderStyle // positional placeholder syntax after binding
	MaxParams           int              // bound argument limit per statement, 0 for none
	CaseInsensitiveLike bool             // ILIKE operator
	NativeBoolean       bool             // BOOLEAN column type with TRUE/FALSE
	OffsetFetch         bool             // OFFSET .. FETCH NEXT instead of LIMIT/OFFSET
}
