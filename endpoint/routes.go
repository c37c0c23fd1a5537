package endpoint

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the resource handlers onto the given router. The
// production router mounts it under the guarded /api group; tests mount it
// at the root. Path parameter names are shared per segment because gin
// allows a single wildcard name under /patients and /notes.
func RegisterRoutes(r gin.IRouter) {
	r.GET("/patients", ListPatients)
	r.POST("/patients", CreatePatient)
	r.GET("/patients/:patientId", GetPatientInfo)
	r.PUT("/patients/:patientId", UpdatePatient)
	r.DELETE("/patients/:patientId", DeletePatient)

	r.POST("/patients/:patientId/notes", CreateNote)
	r.GET("/patients/:patientId/notes", ListPatientNotes)
	r.GET("/notes/:noteId", GetNoteInfo)
	r.PUT("/notes/:noteId", UpdateNote)
	r.DELETE("/notes/:noteId", DeleteNote)

	r.POST("/notes/:noteId/summaries", CreateSummary)
	r.GET("/notes/:noteId/summaries", ListNoteSummaries)
	r.GET("/summaries/:id", GetSummaryInfo)
	r.PUT("/summaries/:id", UpdateSummary)
	r.DELETE("/summaries/:id", DeleteSummary)
}
