package consts

const (
	HeaderVersion = "X-PIN-VERSION"
)
