package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luispauloloureiro/unfdashboard/internal/aggregator"
	"github.com/luispauloloureiro/unfdashboard/internal/filter"
	"github.com/luispauloloureiro/unfdashboard/internal/model"
	"github.com/luispauloloureiro/unfdashboard/internal/pager"
)

// specFromQuery builds a FilterSpec from the request's query parameters.
// Absent exact filters default to the "all" sentinel, absent searches to
// empty, and an unknown period falls back to total — so a bare request
// means "everything".
func specFromQuery(c *gin.Context) model.FilterSpec {
	return model.FilterSpec{
		Server:       c.DefaultQuery("server", model.FilterAll),
		Player:       c.DefaultQuery("player", model.FilterAll),
		Event:        c.DefaultQuery("event", model.FilterAll),
		Date:         c.DefaultQuery("date", model.FilterAll),
		SearchPlayer: c.Query("search_player"),
		SearchEvent:  c.Query("search_event"),
		SearchServer: c.Query("search_server"),
		Period:       model.ParsePeriod(c.Query("period")),
	}
}

// view applies the request's filters and period to the current record set.
func (s *Server) view(spec model.FilterSpec) []model.Record {
	records := filter.Apply(s.store.Records(), spec)
	return filter.ByPeriod(records, spec.Period, s.now())
}

// meta is attached to every summary response so the page can show load
// state without a separate request.
func (s *Server) meta() gin.H {
	return gin.H{
		"last_refresh": s.store.LastRefresh(),
		"last_error":   s.store.LastError(),
		"fallback":     s.store.UsingFallback(),
	}
}

func (s *Server) handleSummary(c *gin.Context) {
	records := s.view(specFromQuery(c))
	c.JSON(http.StatusOK, gin.H{
		"summary": aggregator.Aggregate(records),
		"meta":    s.meta(),
	})
}

func (s *Server) handleRecords(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	records := s.view(specFromQuery(c))
	c.JSON(http.StatusOK, pager.Paginate(records, page, s.pageSize))
}

func (s *Server) handleRanking(c *gin.Context) {
	period := model.ParsePeriod(c.Query("period"))
	c.JSON(http.StatusOK, gin.H{
		"period":  period,
		"ranking": aggregator.Rank(s.store.Records(), period, s.now()),
	})
}

func (s *Server) handleFilters(c *gin.Context) {
	records := s.store.Records()
	c.JSON(http.StatusOK, gin.H{
		"servers": aggregator.DistinctValues(records, model.FieldServer),
		"players": aggregator.DistinctValues(records, model.FieldPlayer),
		"events":  aggregator.DistinctValues(records, model.FieldEvent),
		"dates":   aggregator.DistinctValues(records, model.FieldDate),
	})
}

func (s *Server) handleRefresh(c *gin.Context) {
	refresh := s.store.Load(c.Request.Context())
	s.hub.Publish(refresh)
	c.JSON(http.StatusOK, refresh)
}
