// Package web は配信用のWebページアセットを埋め込む。
package web

import "embed"

// StaticFS はHTTPサーバーが配信する埋め込みアセット。
//
//go:embed static/*
var StaticFS embed.FS
