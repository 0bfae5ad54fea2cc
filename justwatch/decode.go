package justwatch

import (
	"fmt"
	"strings"

	"github.com/justsearch/justsearch/constant"
	"github.com/samber/lo"
)

type searchResponse struct {
	Data *struct {
		PopularTitles struct {
			Edges []struct {
				Node *rawNode `json:"node"`
			} `json:"edges"`
		} `json:"popularTitles"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type rawNode struct {
	ID         string      `json:"id"`
	ObjectID   int         `json:"objectId"`
	ObjectType string      `json:"objectType"`
	Content    *rawContent `json:"content"`
	Offers     []*rawOffer `json:"offers"`
}

type rawContent struct {
	Title               string     `json:"title"`
	FullPath            string     `json:"fullPath"`
	OriginalReleaseYear int        `json:"originalReleaseYear"`
	OriginalReleaseDate string     `json:"originalReleaseDate"`
	Runtime             int        `json:"runtime"`
	ShortDescription    string     `json:"shortDescription"`
	Genres              []rawGenre `json:"genres"`
	ExternalIDs         *struct {
		IMDbID string `json:"imdbId"`
	} `json:"externalIds"`
	PosterURL string `json:"posterUrl"`
}

type rawGenre struct {
	ShortName string `json:"shortName"`
}

type rawOffer struct {
	ID               string      `json:"id"`
	MonetizationType string      `json:"monetizationType"`
	PresentationType string      `json:"presentationType"`
	RetailPrice      string      `json:"retailPrice"`
	StandardWebURL   string      `json:"standardWebURL"`
	Package          *rawPackage `json:"package"`
}

type rawPackage struct {
	PackageID     int    `json:"packageId"`
	ClearName     string `json:"clearName"`
	TechnicalName string `json:"technicalName"`
	Icon          string `json:"icon"`
}

func prefixed(base, path string) string {
	if path == "" {
		return ""
	}
	return base + path
}

// toTitle validates a node and converts it; index is its position in the response.
func toTitle(index int, n *rawNode) (*Title, error) {
	if n == nil {
		return nil, &MalformedRecordError{Index: index, Field: "node"}
	}
	if n.Content == nil {
		return nil, &MalformedRecordError{Index: index, Field: "content"}
	}
	if strings.TrimSpace(n.Content.Title) == "" {
		return nil, &MalformedRecordError{Index: index, Field: "title"}
	}
	objectType := ObjectType(n.ObjectType)
	if !objectType.valid() {
		return nil, &MalformedRecordError{Index: index, Field: "objectType"}
	}

	offers := make([]*Offer, 0, len(n.Offers))
	for i, o := range n.Offers {
		if o == nil || o.Package == nil {
			return nil, &MalformedRecordError{Index: index, Field: fmt.Sprintf("offers[%d].package", i)}
		}
		offers = append(offers, &Offer{
			ID:               o.ID,
			URL:              o.StandardWebURL,
			Name:             o.Package.ClearName,
			TechnicalName:    o.Package.TechnicalName,
			Icon:             prefixed(constant.JustWatchImages, o.Package.Icon),
			MonetizationType: MonetizationType(o.MonetizationType),
			PresentationType: o.PresentationType,
			Price:            o.RetailPrice,
		})
	}

	c := n.Content
	t := &Title{
		ID:               n.ID,
		ObjectID:         n.ObjectID,
		ObjectType:       objectType,
		Title:            c.Title,
		URL:              prefixed(constant.JustWatchSite, c.FullPath),
		ReleaseYear:      c.OriginalReleaseYear,
		ReleaseDate:      c.OriginalReleaseDate,
		RuntimeMinutes:   c.Runtime,
		Poster:           prefixed(constant.JustWatchImages, c.PosterURL),
		ShortDescription: c.ShortDescription,
		Genres: lo.Map(c.Genres, func(g rawGenre, _ int) string {
			return g.ShortName
		}),
		Offers: offers,
	}
	if c.ExternalIDs != nil {
		t.IMDbID = c.ExternalIDs.IMDbID
	}
	return t, nil
}
