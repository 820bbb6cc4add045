package students

import (
	"net/http"

	studentapp "github.com/louisbranch/studentadmin/internal/services/web/modules/students/app"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/studentadmin/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	gateway studentapp.Gateway
}

func newHandlers(gateway studentapp.Gateway, base modulehandler.Base) handlers {
	return handlers{Base: base, gateway: gateway}
}

func (h handlers) newDetail(effects *requestEffects) *studentapp.DetailController {
	return studentapp.NewDetailController(studentapp.DetailDependencies{
		Students:  h.gateway,
		Genders:   h.gateway,
		Notifier:  effects,
		Navigator: effects,
		Logger:    h.Logger(),
	})
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	list := studentapp.NewListController(h.gateway, h.Logger())
	list.Activate(r.Context())
	h.WritePage(w, r, loc, lang, pagerender.Page{
		Title:    webtemplates.T(loc, "students.title"),
		Fragment: webtemplates.StudentListFragment(mapListView(list), loc),
	})
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	effects := &requestEffects{}
	detail := h.newDetail(effects)
	detail.Activate(r.Context(), r.PathValue("studentID"))
	h.writeDetail(w, r, detail, effects)
}

// handleSave creates or updates depending on the mode of the posted route.
func (h handlers) handleSave(w http.ResponseWriter, r *http.Request) {
	detail, effects, ok := h.restoreDetail(w, r)
	if !ok {
		return
	}
	switch detail.Mode() {
	case studentapp.ModeNew:
		detail.SubmitCreate(r.Context())
	case studentapp.ModeEdit:
		detail.SubmitUpdate(r.Context())
	}
	detail.LoadLookups(r.Context())
	h.writeDetail(w, r, detail, effects)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	detail, effects, ok := h.restoreDetail(w, r)
	if !ok {
		return
	}
	detail.DeleteRecord(r.Context())
	detail.LoadLookups(r.Context())
	h.writeDetail(w, r, detail, effects)
}

func (h handlers) handleImage(w http.ResponseWriter, r *http.Request) {
	detail, effects, ok := h.restoreDetail(w, r)
	if !ok {
		return
	}
	if upload, file, found := imageUpload(r); found {
		detail.UploadImage(r.Context(), upload)
		_ = file.Close()
	}
	detail.LoadLookups(r.Context())
	h.writeDetail(w, r, detail, effects)
}

// restoreDetail rebuilds the controller from a posted form. Posts to a blank
// route id have no screen to act on.
func (h handlers) restoreDetail(w http.ResponseWriter, r *http.Request) (*studentapp.DetailController, *requestEffects, bool) {
	routeID := r.PathValue("studentID")
	if studentapp.ResolveMode(routeID) == studentapp.ModeListless {
		h.WriteNotFound(w, r)
		return nil, nil, false
	}
	draft, err := parseDraftForm(r)
	if err != nil {
		h.WriteError(w, r, err)
		return nil, nil, false
	}
	effects := &requestEffects{}
	detail := h.newDetail(effects)
	detail.Restore(routeID, draft)
	return detail, effects, true
}

func (h handlers) writeDetail(w http.ResponseWriter, r *http.Request, detail *studentapp.DetailController, effects *requestEffects) {
	loc, lang := h.PageLocalizer(w, r)
	view := mapDetailView(detail)
	page := pagerender.Page{
		Title:    webtemplates.T(loc, view.HeadingKey),
		Fragment: webtemplates.StudentDetailFragment(view, loc),
	}
	if len(detail.FieldErrors()) > 0 {
		page.StatusCode = http.StatusBadRequest
	}
	effects.apply(&page)
	h.WritePage(w, r, loc, lang, page)
}
