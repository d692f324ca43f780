package handler

import (
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/hitoshi/stockman/web"
)

// StaticHandler は静的ページの配信を行う。
// 配信元は埋め込みアセット、またはSTATIC_DIRで指定されたディレクトリ。
type StaticHandler struct {
	fsys fs.FS
}

// NewStaticHandler はStaticHandlerを生成する。
// dirが空の場合は埋め込みアセットを配信する。
func NewStaticHandler(dir string) (*StaticHandler, error) {
	if dir != "" {
		return &StaticHandler{fsys: os.DirFS(dir)}, nil
	}

	fsys, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, err
	}
	return &StaticHandler{fsys: fsys}, nil
}

// serveFileFS はhttp.ServeFileFS(Go 1.22+)相当の処理をGo 1.21で行う。
func serveFileFS(w http.ResponseWriter, r *http.Request, fsys fs.FS, name string) {
	f, err := fsys.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
		return
	}

	rs, ok := f.(io.ReadSeeker)
	if !ok {
		http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, name, info.ModTime(), rs)
}

// Index はトップページを配信する。
// GET /
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	serveFileFS(w, r, h.fsys, "index.html")
}

// Admin は管理画面を配信する。管理者ガードの内側に配置すること。
// GET /admin
func (h *StaticHandler) Admin(w http.ResponseWriter, r *http.Request) {
	serveFileFS(w, r, h.fsys, "admin.html")
}

// Assets はその他の静的アセットを配信するハンドラーを返す。
// admin.htmlはガードを迂回させないため直接配信しない。
func (h *StaticHandler) Assets() http.Handler {
	fileServer := http.FileServer(http.FS(h.fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimPrefix(r.URL.Path, "/") == "admin.html" {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
