// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                 = "/"
	Health               = "/up"
	Metrics              = "/metrics"
	StaticPrefix         = "/static/"
	Students             = "/students"
	StudentsPrefix       = "/students/"
	StudentPattern       = StudentsPrefix + "{studentID}"
	StudentDeletePattern = StudentsPrefix + "{studentID}/delete"
	StudentImagePattern  = StudentsPrefix + "{studentID}/image"
	StudentRestPattern   = StudentsPrefix + "{studentID}/{rest...}"
	NewStudentToken      = "add"
	NewStudent           = StudentsPrefix + NewStudentToken
	DefaultProfileImage  = StaticPrefix + "user.svg"
)

// Student returns the detail path for one student.
func Student(studentID string) string {
	return StudentsPrefix + escapeSegment(studentID)
}

// StudentDelete returns the delete action path for one student.
func StudentDelete(studentID string) string {
	return Student(studentID) + "/delete"
}

// StudentImage returns the profile image upload path for one student.
func StudentImage(studentID string) string {
	return Student(studentID) + "/image"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
