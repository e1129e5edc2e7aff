package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/echenim/bookview/internal/config"
	"github.com/echenim/bookview/internal/depth"
	fm "github.com/echenim/bookview/internal/formatter"
	"github.com/echenim/bookview/internal/metrics"
	md "github.com/echenim/bookview/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// reservedMarkets are path segments taken by static routes under /book.
var reservedMarkets = map[md.Market]struct{}{
	"format": {},
}

// BookView serves formatted order books. Snapshots either arrive inline with
// the request or are pushed ahead of time by the market-data side and kept in
// the store.
type BookView struct {
	cfg   config.Config
	store *depth.Store
}

func NewBookView(cfg config.Config, store *depth.Store) *BookView {
	return &BookView{cfg: cfg, store: store}
}

// Register mounts the book routes on e.
func (bv *BookView) Register(e *echo.Echo) {
	e.POST("/book/format", bv.FormatBook)

	e.GET("/book", bv.ListMarkets)
	e.GET("/book/:market", bv.GetBook)
	e.GET("/book/:market/bid", bv.GetBestBid)
	e.GET("/book/:market/ask", bv.GetBestAsk)
	e.GET("/book/:market/spread", bv.GetSpread)

	e.PUT("/book/:market", bv.PutBook)
	e.DELETE("/book/:market", bv.DeleteBook)
}

// FormatBook formats the snapshot in the request body without storing it.
func (bv *BookView) FormatBook(c echo.Context) error {
	opts, err := bv.options(c)
	if err != nil {
		return err
	}

	var snap md.Snapshot
	if err := json.NewDecoder(c.Request().Body).Decode(&snap); err != nil {
		metrics.FormatErrorsTotal.WithLabelValues("decode").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid snapshot body")
	}

	return bv.respond(c, "inline", snap, opts)
}

// PutBook replaces the stored snapshot of a market.
func (bv *BookView) PutBook(c echo.Context) error {
	market := md.Market(c.Param("market"))
	if _, ok := reservedMarkets[market]; ok {
		return echo.NewHTTPError(http.StatusBadRequest, "market name "+strconv.Quote(string(market))+" is reserved")
	}

	var snap md.Snapshot
	if err := json.NewDecoder(c.Request().Body).Decode(&snap); err != nil {
		metrics.FormatErrorsTotal.WithLabelValues("decode").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid snapshot body")
	}
	if err := snap.Validate(); err != nil {
		metrics.FormatErrorsTotal.WithLabelValues("invalid_level").Inc()
		return err
	}

	bv.store.Put(market, snap)
	metrics.SnapshotsStored.WithLabelValues(string(market)).Inc()

	return c.NoContent(http.StatusNoContent)
}

// GetBook formats the stored snapshot of a market.
func (bv *BookView) GetBook(c echo.Context) error {
	opts, err := bv.options(c)
	if err != nil {
		return err
	}

	snap, err := bv.snapshot(c)
	if err != nil {
		return err
	}

	return bv.respond(c, "stored", snap, opts)
}

func (bv *BookView) ListMarkets(c echo.Context) error {
	return c.JSON(http.StatusOK, bv.store.Markets())
}

func (bv *BookView) DeleteBook(c echo.Context) error {
	market := md.Market(c.Param("market"))
	if !bv.store.Delete(market) {
		return echo.NewHTTPError(http.StatusNotFound, "market not found")
	}

	logrus.WithField("market", market).Info("book removed")

	return c.JSON(http.StatusOK, map[string]any{"msg": "book deleted"})
}

// GetBestBid returns the highest bid of a stored market, or an empty level.
func (bv *BookView) GetBestBid(c echo.Context) error {
	snap, err := bv.snapshot(c)
	if err != nil {
		return err
	}

	best, _ := depth.BestBid(snap.Bids)
	return c.JSON(http.StatusOK, best)
}

// GetBestAsk returns the lowest ask of a stored market, or an empty level.
func (bv *BookView) GetBestAsk(c echo.Context) error {
	snap, err := bv.snapshot(c)
	if err != nil {
		return err
	}

	best, _ := depth.BestAsk(snap.Asks)
	return c.JSON(http.StatusOK, best)
}

// GetSpread returns the spread row for the selected levels of a stored market.
func (bv *BookView) GetSpread(c echo.Context) error {
	opts, err := bv.options(c)
	if err != nil {
		return err
	}

	snap, err := bv.snapshot(c)
	if err != nil {
		return err
	}

	row, err := fm.SpreadRowFor(depth.Top(snap.Asks, opts.Limit), depth.Top(snap.Bids, opts.Limit), opts.Grouping)
	if err != nil {
		metrics.FormatErrorsTotal.WithLabelValues(reason(err)).Inc()
		return err
	}
	if row == nil {
		row = &md.SpreadRow{Grouping: opts.Grouping}
	}

	return c.JSON(http.StatusOK, row)
}

func (bv *BookView) respond(c echo.Context, source string, snap md.Snapshot, opts fm.Options) error {
	book, err := fm.FormatBook(snap, opts)
	if err != nil {
		metrics.FormatErrorsTotal.WithLabelValues(reason(err)).Inc()
		return err
	}

	metrics.BooksFormattedTotal.WithLabelValues(source, opts.Pair.String()).Inc()

	if book.Spread != nil {
		metrics.SpreadPercentage.WithLabelValues(string(snap.Market)).Set(book.Spread.Percentage)

		if book.Spread.Crossed {
			metrics.CrossedBooksTotal.WithLabelValues(string(snap.Market)).Inc()
			logrus.WithFields(logrus.Fields{
				"market": snap.Market,
				"spread": book.Spread.Value,
			}).Warn("crossed book")
		}
	}

	return c.JSON(http.StatusOK, book)
}

func (bv *BookView) snapshot(c echo.Context) (md.Snapshot, error) {
	market := md.Market(c.Param("market"))
	snap, ok := bv.store.Get(market)
	if !ok {
		return md.Snapshot{}, echo.NewHTTPError(http.StatusNotFound, "market not found")
	}
	return snap, nil
}

// options reads pair, depth and grouping from the query string, falling back
// to the configured defaults.
func (bv *BookView) options(c echo.Context) (fm.Options, error) {
	raw := c.QueryParam("pair")
	if raw == "" {
		raw = bv.cfg.Book.DefaultPair
	}
	pair, err := md.ParsePair(raw)
	if err != nil || !bv.cfg.PairEnabled(pair.String()) {
		return fm.Options{}, echo.NewHTTPError(http.StatusBadRequest, "unsupported pair "+strconv.Quote(raw))
	}

	limit := bv.cfg.Book.Depth
	if v := c.QueryParam("depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fm.Options{}, echo.NewHTTPError(http.StatusBadRequest, "depth must be a positive integer")
		}
		limit = n
	}

	grouping := c.QueryParam("grouping")
	if !bv.cfg.GroupingAllowed(grouping) {
		return fm.Options{}, echo.NewHTTPError(http.StatusBadRequest, "unsupported grouping "+strconv.Quote(grouping))
	}

	return fm.Options{Pair: pair, Limit: limit, Grouping: grouping}, nil
}
