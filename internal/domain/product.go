package domain

// ListType identifies which of the three product collections a product belongs to
type ListType string

const (
	ListAvailable ListType = "available"
	ListShopping  ListType = "shopping"
	ListOffer     ListType = "offer"
)

// Valid reports whether the list type is one of the known collections
func (l ListType) Valid() bool {
	switch l {
	case ListAvailable, ListShopping, ListOffer:
		return true
	}
	return false
}

// Orderable reports whether products can be added to this list with a quantity
func (l ListType) Orderable() bool {
	return l == ListShopping || l == ListOffer
}

// Product represents a catalog product or a list item
type Product struct {
	ID       string   `json:"id" yaml:"id"`
	Barcode  int64    `json:"barcode" yaml:"barcode"`
	Name     string   `json:"name" yaml:"name"`
	Price    float64  `json:"price" yaml:"price"`
	Category string   `json:"category,omitempty" yaml:"category,omitempty"`
	FromList ListType `json:"fromList" yaml:"fromList"`
	Quantity int      `json:"quantity,omitempty" yaml:"quantity,omitempty"` // 0 means unset
}

// CatalogEntry projects the product onto the fields the voice resolver needs
func (p Product) CatalogEntry() CatalogEntry {
	return CatalogEntry{ID: p.ID, DisplayName: p.Name}
}

// CatalogEntry is a candidate for voice command resolution
type CatalogEntry struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"name" yaml:"name"`
}

// MatchResult is the outcome of resolving a spoken phrase against the catalog.
// The zero value is NoMatch.
type MatchResult struct {
	Matched bool         `json:"matched"`
	Entry   CatalogEntry `json:"entry"`
	Score   float64      `json:"score"`
}

// NoMatch is returned when no candidate reaches the acceptance threshold
var NoMatch = MatchResult{}

// Matched builds a positive match result
func Matched(entry CatalogEntry, score float64) MatchResult {
	return MatchResult{Matched: true, Entry: entry, Score: score}
}

// VoiceRequest is a finalized speech transcript submitted for processing
type VoiceRequest struct {
	Transcript string `json:"transcript"`
	Locale     string `json:"locale,omitempty"` // BCP 47, e.g. "el-GR"
}

// VoiceOutcome describes what happened to a processed transcript
type VoiceOutcome struct {
	Transcript  string         `json:"transcript"`
	Locale      string         `json:"locale"`
	Heard       bool           `json:"heard"`
	Added       *Product       `json:"added,omitempty"`
	Suggestions []CatalogEntry `json:"suggestions,omitempty"`
	Message     string         `json:"message"`
}

// ListSummary is a list's contents with its total cost
type ListSummary struct {
	List      ListType  `json:"list"`
	Items     []Product `json:"items"`
	TotalCost float64   `json:"totalCost"`
}
