package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Chrome
	message.SetString(lang, "app.name", "Student Admin Portal")
	message.SetString(lang, "title.page", "%s | Student Admin Portal")
	message.SetString(lang, "nav.students", "Students")
	message.SetString(lang, "nav.add_student", "Add Student")
	message.SetString(lang, "nav.language", "Language")
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_pt_br", "Português (Brasil)")

	// Student list
	message.SetString(lang, "students.title", "Students")
	message.SetString(lang, "students.empty", "No students to show.")
	message.SetString(lang, "students.column.first_name", "First Name")
	message.SetString(lang, "students.column.last_name", "Last Name")
	message.SetString(lang, "students.column.date_of_birth", "Date of Birth")
	message.SetString(lang, "students.column.email", "Email")
	message.SetString(lang, "students.column.mobile", "Mobile")
	message.SetString(lang, "students.column.gender", "Gender")
	message.SetString(lang, "students.action.edit", "Edit")

	// Student detail
	message.SetString(lang, "student.title.new", "Add New Student")
	message.SetString(lang, "student.title.edit", "Edit Student")
	message.SetString(lang, "student.title.none", "Student")
	message.SetString(lang, "student.none_selected", "Choose a student from the list to view their profile.")
	message.SetString(lang, "student.field.first_name", "First Name")
	message.SetString(lang, "student.field.last_name", "Last Name")
	message.SetString(lang, "student.field.date_of_birth", "Date of Birth")
	message.SetString(lang, "student.field.email", "Email")
	message.SetString(lang, "student.field.mobile", "Mobile")
	message.SetString(lang, "student.field.gender", "Gender")
	message.SetString(lang, "student.field.physical_address", "Physical Address")
	message.SetString(lang, "student.field.postal_address", "Postal Address")
	message.SetString(lang, "student.field.profile_image", "Profile Image")
	message.SetString(lang, "student.gender.placeholder", "Select a gender")
	message.SetString(lang, "student.action.add", "Add")
	message.SetString(lang, "student.action.update", "Update")
	message.SetString(lang, "student.action.delete", "Delete")
	message.SetString(lang, "student.action.upload", "Upload Image")
	message.SetString(lang, "student.action.back", "Back to Students")

	// Notices
	message.SetString(lang, "student.notice.updated", "Student updated successfully")
	message.SetString(lang, "student.notice.added", "Student added successfully")
	message.SetString(lang, "student.notice.deleted", "Student deleted successfully")
	message.SetString(lang, "student.notice.image_updated", "Profile image updated")

	// Validation
	message.SetString(lang, "student.validation.required", "This field is required.")
	message.SetString(lang, "student.validation.email", "Enter a valid email address.")
	message.SetString(lang, "student.validation.date", "Enter a date as YYYY-MM-DD.")
	message.SetString(lang, "student.validation.mobile", "Enter a valid mobile number.")
	message.SetString(lang, "student.validation.invalid", "This value is not valid.")

	// Errors
	message.SetString(lang, "web.error.page_title_not_found", "Not Found | Student Admin Portal")
	message.SetString(lang, "web.error.page_title_server_error", "Error | Student Admin Portal")
	message.SetString(lang, "web.error.title_not_found", "Page not found")
	message.SetString(lang, "web.error.title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you are looking for does not exist.")
	message.SetString(lang, "web.error.message_server_error", "We could not complete your request. Please try again.")
	message.SetString(lang, "web.error.action_back_to_students", "Back to Students")
	message.SetString(lang, "error.web.message.cross_origin_request", "Cross-origin form submissions are not allowed.")
	message.SetString(lang, "error.web.message.invalid_form", "The submitted form could not be read.")
	message.SetString(lang, "error.web.message.student_api_unavailable", "The student service is not configured.")
}
