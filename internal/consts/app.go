package consts

const (
	ApplicationName    = "Yalla Server"
	ApplicationVersion = "v1.2.0"
)
