package consts

const (
	ApplicationName    = "menu-server"
	ApplicationVersion = "1.0.0"
)

const (
	// MessageNotFound is the error body for a missing dish or upload.
	MessageNotFound = "No encontrado"
	// MessageDeleted acknowledges a successful delete.
	MessageDeleted = "Eliminado"
)
