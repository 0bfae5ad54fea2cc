package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsearch/justsearch/locale"
	"github.com/justsearch/justsearch/log"
	"github.com/justsearch/justsearch/media"
	"github.com/justsearch/justsearch/search"
)

func (s *Server) search(c *gin.Context) {
	phrase := c.Query("q")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	req := search.Request{
		Phrase:    phrase,
		MediaType: media.ParseMediaType(c.Query("type")),
		Lang:      c.DefaultQuery("lang", s.cfg.Lang),
		Location:  locale.WithCountry(c.DefaultQuery("country", s.cfg.Country)),
	}

	seq, err := s.searcher.Search(c.Request.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			log.Errorf("server: search %q: %s", phrase, err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, search.Output{Query: phrase, Results: search.Collect(seq, limit)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrEmptyPhrase):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		// transport, status, GraphQL and malformed record errors all come from upstream
		return http.StatusBadGateway
	}
}
