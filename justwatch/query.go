package justwatch

const searchTitlesOperation = "GetSearchTitles"

const searchTitlesQuery = `query GetSearchTitles(
  $searchTitlesFilter: TitleFilter!,
  $country: Country!,
  $language: Language!,
  $first: Int!,
  $formatPoster: ImageFormat,
  $formatOfferIcon: IconFormat,
  $profile: PosterProfile,
  $backdropProfile: BackdropProfile,
  $filter: OfferFilter!,
) {
  popularTitles(
    country: $country
    filter: $searchTitlesFilter
    first: $first
    sortBy: POPULAR
    sortRandomSeed: 0
  ) {
    edges {
      ...SearchTitleGraphql
      __typename
    }
    __typename
  }
}

fragment SearchTitleGraphql on PopularTitlesEdge {
  node {
    id
    objectId
    objectType
    content(country: $country, language: $language) {
      title
      fullPath
      originalReleaseYear
      originalReleaseDate
      runtime
      shortDescription
      genres {
        shortName
        __typename
      }
      externalIds {
        imdbId
        __typename
      }
      posterUrl(profile: $profile, format: $formatPoster)
      backdrops(profile: $backdropProfile, format: $formatPoster) {
        backdropUrl
        __typename
      }
      __typename
    }
    offers(country: $country, platform: WEB, filter: $filter) {
      id
      monetizationType
      presentationType
      retailPrice(language: $language)
      standardWebURL
      package {
        id
        packageId
        clearName
        technicalName
        icon(profile: S100, format: $formatOfferIcon)
        __typename
      }
      __typename
    }
    __typename
  }
  __typename
}
`

type graphQLRequest struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Query         string         `json:"query"`
}

func newSearchRequest(q Query) graphQLRequest {
	return graphQLRequest{
		OperationName: searchTitlesOperation,
		Query:         searchTitlesQuery,
		Variables: map[string]any{
			"searchTitlesFilter": map[string]any{"searchQuery": q.Title},
			"country":            q.Country,
			"language":           q.Language,
			"first":              q.Count,
			"formatPoster":       "JPG",
			"formatOfferIcon":    "PNG",
			"profile":            "S718",
			"backdropProfile":    "S1920",
			"filter":             map[string]any{"bestOnly": q.BestOnly},
		},
	}
}
