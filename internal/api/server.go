package api

import (
	"database/sql"

	"github.com/rs/zerolog"

	"studyaid/internal/generator"
	"studyaid/internal/services"
)

// Server bundles the HTTP handlers with the services they call. The DB
// handle is only used by the health check.
type Server struct {
	Documents services.DocumentService
	Study     services.StudyService
	Analytics services.AnalyticsService
	Generator generator.Service

	ExtractText services.ExtractTextFunc

	DB        *sql.DB
	ModelName string
	Log       zerolog.Logger

	CORSAllowedOrigins []string
	UploadMaxBytes     int64
}
