package justwatch

// ObjectType is the provider's title category.
type ObjectType string

const (
	ObjectMovie ObjectType = "MOVIE"
	ObjectShow  ObjectType = "SHOW"
)

func (o ObjectType) valid() bool {
	return o == ObjectMovie || o == ObjectShow
}

// MonetizationType is how an offer is paid for.
type MonetizationType string

const (
	FlatRate MonetizationType = "FLATRATE"
	Buy      MonetizationType = "BUY"
	Rent     MonetizationType = "RENT"
	Ads      MonetizationType = "ADS"
	Free     MonetizationType = "FREE"
	Cinema   MonetizationType = "CINEMA"
)

// Query is one title search.
type Query struct {
	Title    string
	Country  string
	Language string
	BestOnly bool
	Count    int
}

// Title is a search result. Required fields are validated by the client;
// RuntimeMinutes and Poster may be zero.
type Title struct {
	ID               string
	ObjectID         int
	ObjectType       ObjectType
	Title            string
	URL              string
	ReleaseYear      int
	ReleaseDate      string
	RuntimeMinutes   int
	Poster           string
	ShortDescription string
	Genres           []string
	IMDbID           string
	Offers           []*Offer
}

// Offer is a single way to watch a Title.
type Offer struct {
	ID               string
	URL              string
	Name             string
	TechnicalName    string
	Icon             string
	MonetizationType MonetizationType
	PresentationType string
	Price            string
}
