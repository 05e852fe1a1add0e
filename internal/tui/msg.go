package tui

import (
	"log/slog"

	"github.com/papapumpkin/holonet/internal/app"
	"github.com/papapumpkin/holonet/internal/swapi"
)

// msgCategoryFetched carries the outcome of a category fetch.
type msgCategoryFetched struct {
	req app.Request
	doc swapi.Document
	err error
}

// msgResourceFetched carries the outcome of a details fetch.
type msgResourceFetched struct {
	url string
	doc swapi.Document
	err error
}

// MsgGatewayChanged replaces the gateway, e.g. after a config reload. The
// next fetch uses it; requests already in flight complete on the old one.
type MsgGatewayChanged struct {
	Gateway app.Gateway
}

// MsgLog delivers a log record to the status bar.
type MsgLog struct {
	Summary string
	Level   slog.Level
}

// msgNoticeFade clears the status bar notice with the given sequence
// number, unless a newer notice replaced it.
type msgNoticeFade struct {
	seq int
}
