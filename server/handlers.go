package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/risk"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleInstruments(c *gin.Context) {
	if q := c.Query("category"); q != "" {
		cat, ok := market.ParseCategory(q)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category " + q})
			return
		}
		c.JSON(http.StatusOK, gin.H{"instruments": market.ByCategory(cat)})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"categories":  market.Categories(),
		"symbols":     market.Symbols(),
		"instruments": market.All(),
	})
}

func (s *Server) handleInstrumentLookup(c *gin.Context) {
	symbol := c.Query("symbol")
	inst, ok := market.Lookup(symbol)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "instrument not found"})
		return
	}
	resp := gin.H{
		"instrument": inst,
		"sizing":     inst.Category.Family().String(),
	}
	if loc, ok := inst.PipLocation(); ok {
		resp["pipLocation"] = loc
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) calculate(req calcRequest) calcResponse {
	in := req.inputs()
	res := risk.Calculate(in)

	resp := calcResponse{
		Inputs:    in,
		Result:    res,
		Detection: risk.Detect(in.EntryPrice, in.ExitPrice, in.StopLoss),
		Decision:  risk.Check(s.policy, in, res),
	}
	if inst, ok := market.Lookup(in.Symbol); ok {
		resp.Instrument = &inst
	}
	return resp
}

// handleCalculate never rejects incomplete input; the zeroed result is
// the answer. Only a result that overflowed is refused, since JSON has no
// Inf or NaN.
func (s *Server) handleCalculate(c *gin.Context) {
	var req calcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp := s.calculate(req)
	if !resp.Result.Finite() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "account settings overflow the calculation"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDirection(c *gin.Context) {
	var req calcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := req.inputs()
	c.JSON(http.StatusOK, gin.H{
		"detection":      risk.Detect(in.EntryPrice, in.ExitPrice, in.StopLoss),
		"tradeDirection": risk.DirectionOf(in.EntryPrice, in.ExitPrice),
	})
}

func (s *Server) handleTradeCreate(c *gin.Context) {
	var req calcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := s.calculate(req)
	if resp.Instrument == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown instrument " + req.Instrument})
		return
	}
	in := resp.Inputs
	if !risk.PricesValid(in.EntryPrice, in.ExitPrice, in.StopLoss) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entry, target and stop loss must be positive"})
		return
	}
	if !resp.Result.Finite() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account settings overflow the calculation"})
		return
	}

	rec := journal.NewTradeRecord(in, *resp.Instrument, resp.Result, req.Notes)
	if err := s.store.RecordTrade(c.Request.Context(), rec); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record trade"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trade": rec, "decision": resp.Decision})
}

func (s *Server) listTrades(c *gin.Context) ([]journal.TradeRecord, bool) {
	f, err := filterFromQuery(c.Query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	trades, err := s.store.ListTrades(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list trades"})
		return nil, false
	}
	return trades, true
}

func (s *Server) handleTradeList(c *gin.Context) {
	trades, ok := s.listTrades(c)
	if !ok {
		return
	}
	if trades == nil {
		trades = []journal.TradeRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

func (s *Server) handleTradeSummary(c *gin.Context) {
	trades, ok := s.listTrades(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": journal.Summarize(trades)})
}

func (s *Server) handleTradeGet(c *gin.Context) {
	rec, err := s.store.GetTrade(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trade": rec})
}

func (s *Server) handleTradeDelete(c *gin.Context) {
	if err := s.store.DeleteTrade(c.Request.Context(), c.Param("id")); err != nil {
		s.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) storeError(c *gin.Context, err error) {
	if errors.Is(err, journal.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "trade not found"})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "journal unavailable"})
}
