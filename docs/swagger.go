package docs

// @title MentorExpress API
// @version 1.0
// @description Academic mentoring service: student/mentor registry and ML-assisted help-request matching

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
