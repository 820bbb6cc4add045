package students

import (
	"net/http"

	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Students, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.StudentsPrefix+"{$}", h.handleList)

	mux.HandleFunc(http.MethodGet+" "+routepath.StudentPattern, h.handleDetail)
	mux.HandleFunc(http.MethodPost+" "+routepath.StudentPattern, h.handleSave)
	mux.HandleFunc(http.MethodPost+" "+routepath.StudentDeletePattern, h.handleDelete)
	mux.HandleFunc(http.MethodPost+" "+routepath.StudentImagePattern, h.handleImage)

	mux.HandleFunc(http.MethodGet+" "+routepath.StudentRestPattern, h.WriteNotFound)
	mux.HandleFunc(http.MethodPost+" "+routepath.StudentRestPattern, h.WriteNotFound)
}
