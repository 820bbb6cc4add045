package app

import (
	"context"
	"log"
	"strings"

	"github.com/louisbranch/studentadmin/internal/services/web/platform/flash"
	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
	"golang.org/x/sync/errgroup"
)

// DetailDependencies wires a detail controller.
type DetailDependencies struct {
	Students  StudentGateway
	Genders   GenderGateway
	Notifier  Notifier
	Navigator Navigator
	Validate  FormValidator
	Logger    *log.Logger
}

// DetailController owns one detail screen: its mode, draft, lookup list and
// derived display image. A controller serves a single request.
type DetailController struct {
	students  StudentGateway
	lookups   GenderGateway
	notifier  Notifier
	navigator Navigator
	validate  FormValidator
	logger    *log.Logger

	mode            Mode
	routeID         string
	draft           Student
	genders         []Gender
	displayImageURL string
	fieldErrors     []FieldError
}

// NewDetailController builds a controller in listless mode with the
// placeholder draft and default image.
func NewDetailController(deps DetailDependencies) *DetailController {
	c := &DetailController{
		students:        deps.Students,
		lookups:         deps.Genders,
		notifier:        deps.Notifier,
		navigator:       deps.Navigator,
		validate:        deps.Validate,
		logger:          deps.Logger,
		mode:            ModeListless,
		draft:           EmptyStudent(),
		displayImageURL: routepath.DefaultProfileImage,
	}
	if c.students == nil {
		c.students = unavailableGateway{}
	}
	if c.lookups == nil {
		c.lookups = unavailableGateway{}
	}
	if c.notifier == nil {
		c.notifier = discardNotifier{}
	}
	if c.navigator == nil {
		c.navigator = discardNavigator{}
	}
	if c.validate == nil {
		c.validate = ValidateStudent
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}

// Mode returns the resolved screen mode.
func (c *DetailController) Mode() Mode { return c.mode }

// RouteID returns the route id the screen was opened with.
func (c *DetailController) RouteID() string { return c.routeID }

// Draft returns the record being edited.
func (c *DetailController) Draft() Student { return c.draft }

// Genders returns the current lookup list.
func (c *DetailController) Genders() []Gender { return c.genders }

// DisplayImageURL returns the image shown for the draft.
func (c *DetailController) DisplayImageURL() string { return c.displayImageURL }

// FieldErrors returns the validation failures of the last submit.
func (c *DetailController) FieldErrors() []FieldError { return c.fieldErrors }

// SetDraft binds form edits to the draft. The display image is not recomputed.
func (c *DetailController) SetDraft(draft Student) {
	c.draft = draft
}

type fetchResult struct {
	student Student
	err     error
}

func (r fetchResult) orPlaceholder() (Student, bool) {
	if r.err != nil {
		return EmptyStudent(), false
	}
	return r.student, true
}

// Activate resolves the mode for routeID and loads the screen. In edit mode the
// record and the lookup list load concurrently; failures leave safe defaults.
func (c *DetailController) Activate(ctx context.Context, routeID string) {
	c.routeID = strings.TrimSpace(routeID)
	c.mode = ResolveMode(c.routeID)
	if c.mode == ModeListless {
		return
	}

	var (
		loaded    fetchResult
		genders   []Gender
		genderErr error
		group     errgroup.Group
	)
	if c.mode == ModeEdit {
		group.Go(func() error {
			student, err := c.students.GetStudent(ctx, c.routeID)
			loaded = fetchResult{student: student, err: err}
			return nil
		})
	}
	group.Go(func() error {
		genders, genderErr = c.lookups.ListGenders(ctx)
		return nil
	})
	_ = group.Wait()

	c.applyGenders(genders, genderErr)
	if c.mode == ModeEdit {
		student, ok := loaded.orPlaceholder()
		if !ok {
			c.logger.Printf("load student failed id=%s err=%v", c.routeID, loaded.err)
		}
		c.draft = student
	}
	c.refreshDisplayImage()
}

// Restore rebuilds a screen from a draft posted by the browser.
func (c *DetailController) Restore(routeID string, draft Student) {
	c.routeID = strings.TrimSpace(routeID)
	c.mode = ResolveMode(c.routeID)
	c.draft = draft
	c.refreshDisplayImage()
}

// LoadLookups fetches the gender list for a restored screen.
func (c *DetailController) LoadLookups(ctx context.Context) {
	if c.mode == ModeListless {
		return
	}
	genders, err := c.lookups.ListGenders(ctx)
	c.applyGenders(genders, err)
}

func (c *DetailController) applyGenders(genders []Gender, err error) {
	if err != nil {
		c.logger.Printf("load genders failed err=%v", err)
		return
	}
	c.genders = genders
}

// SubmitUpdate saves the draft of an existing record.
func (c *DetailController) SubmitUpdate(ctx context.Context) {
	if !c.formValid() {
		return
	}
	if _, err := c.students.UpdateStudent(ctx, c.draft.ID, c.draft); err != nil {
		c.logger.Printf("update student failed id=%s err=%v", c.draft.ID, err)
		return
	}
	c.notifier.Notify(flash.NoticeSuccess(NoticeStudentUpdated, NoticeWindow))
}

// SubmitCreate creates a record from the draft and then moves to its page.
func (c *DetailController) SubmitCreate(ctx context.Context) {
	if !c.formValid() {
		return
	}
	created, err := c.students.CreateStudent(ctx, c.draft)
	if err != nil {
		c.logger.Printf("create student failed err=%v", err)
		return
	}
	c.notifier.Notify(flash.NoticeSuccess(NoticeStudentAdded, NoticeWindow))
	c.navigator.NavigateAfter(routepath.Student(created.ID), NoticeWindow)
}

// DeleteRecord deletes the draft's record without confirmation and then
// returns to the list.
func (c *DetailController) DeleteRecord(ctx context.Context) {
	if err := c.students.DeleteStudent(ctx, c.draft.ID); err != nil {
		c.logger.Printf("delete student failed id=%s err=%v", c.draft.ID, err)
		return
	}
	c.notifier.Notify(flash.NoticeSuccess(NoticeStudentDeleted, NoticeWindow))
	c.navigator.NavigateAfter(routepath.Students, NoticeWindow)
}

// UploadImage replaces the draft's profile image. The guard checks the route
// id, while the upload targets the draft's id.
func (c *DetailController) UploadImage(ctx context.Context, upload ImageUpload) {
	if c.routeID == "" {
		return
	}
	path, err := c.students.UploadProfileImage(ctx, c.draft.ID, upload)
	if err != nil {
		c.logger.Printf("upload profile image failed id=%s err=%v", c.draft.ID, err)
		return
	}
	c.draft.ProfileImageURL = path
	c.refreshDisplayImage()
	c.notifier.Notify(flash.NoticeSuccess(NoticeImageUpdated, NoticeWindow))
}

func (c *DetailController) formValid() bool {
	c.fieldErrors = c.validate(c.draft)
	return len(c.fieldErrors) == 0
}

func (c *DetailController) refreshDisplayImage() {
	if c.draft.ProfileImageURL == "" {
		c.displayImageURL = routepath.DefaultProfileImage
		return
	}
	c.displayImageURL = c.students.ResolveImageURL(c.draft.ProfileImageURL)
}
