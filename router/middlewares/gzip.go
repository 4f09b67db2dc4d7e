package middlewares

import (
	"compress/gzip"
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/labstack/echo/v4"
)

// gzipMinSize これ未満のレスポンスは圧縮しない
const gzipMinSize = 1024

// Gzip Gzipミドルウェア
//
// JSONとピン登録フォームのHTMLを圧縮します
func Gzip() echo.MiddlewareFunc {
	gzh, _ := gziphandler.GzipHandlerWithOpts(
		gziphandler.ContentTypes([]string{
			echo.MIMEApplicationJSON,
			echo.MIMETextHTML,
			echo.MIMETextPlain,
		}),
		gziphandler.CompressionLevel(gzip.BestSpeed),
		gziphandler.MinSize(gzipMinSize),
	)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			gzh(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.SetRequest(r)
				c.Response().Writer = w
				if err := next(c); err != nil {
					c.Error(err)
				}
			})).ServeHTTP(c.Response().Writer, c.Request())
			return
		}
	}
}
