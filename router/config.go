package router

// Config APIサーバー設定
type Config struct {
	// 開発モードかどうか
	Development bool
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
	// Gzipped レスポンスをGzip圧縮するかどうか
	Gzipped bool
	// AllowOrigins CORSで許可するオリジン
	//
	// セッションクッキーを送るためワイルドカードは使えません
	AllowOrigins []string
}
