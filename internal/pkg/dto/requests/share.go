package requests

type ExportArchive struct {
	Name string `json:"name" validate:"max=100"`
}
