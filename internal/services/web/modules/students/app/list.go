package app

import (
	"context"
	"log"

	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
)

// ListController loads the student collection for the list screen.
type ListController struct {
	gateway  StudentGateway
	logger   *log.Logger
	students []Student
}

// NewListController builds an empty list screen.
func NewListController(gateway StudentGateway, logger *log.Logger) *ListController {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &ListController{gateway: gateway, logger: logger}
}

// Activate fetches all students. A failed fetch leaves the list empty.
func (c *ListController) Activate(ctx context.Context) {
	students, err := c.gateway.ListStudents(ctx)
	if err != nil {
		c.logger.Printf("list students failed err=%v", err)
		c.students = nil
		return
	}
	c.students = students
}

// Students returns the loaded collection.
func (c *ListController) Students() []Student { return c.students }

// DetailPath returns the detail route for one row.
func (c *ListController) DetailPath(studentID string) string {
	return routepath.Student(studentID)
}
