package reports

import (
	"bytes"
	"net/http"

	"student-pet-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/age-brackets", ageBracketsHandler(svc))
		rr.Get("/total", totalHandler(svc))
		rr.Get("/roster", rosterHandler(svc))
		rr.Get("/students.csv", exportCSVHandler(svc))
	})
}

type bracketCount struct {
	Bracket string `json:"bracket"`
	Count   int    `json:"count"`
}

type totalResponse struct {
	Total int `json:"total"`
}

type rosterRow struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DocumentNumber string `json:"document_number"`
	Course         string `json:"course"`
	Age            int    `json:"age"`
	Sex            string `json:"sex"`
}

// ageBracketsHandler godoc
// @Summary Alumnos por franja de edad
// @Description Cuenta alumnos en 18-25, 26-30, 31-40, 41-50 y 51+. Las cinco franjas siempre aparecen, en ese orden. 51+ también agrupa edades menores de 18 y sin edad.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} bracketCount
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Router /reports/age-brackets [get]
func ageBracketsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.CountByAgeBracket(r.Context())
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		out := make([]bracketCount, 0, len(counts))
		for _, b := range Brackets() {
			out = append(out, bracketCount{Bracket: b, Count: counts[b]})
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// totalHandler godoc
// @Summary Total de alumnos
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} totalResponse
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Router /reports/total [get]
func totalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.TotalCount(r.Context())
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, totalResponse{Total: n})
	}
}

// rosterHandler godoc
// @Summary Listado para reporte
// @Description Filas del reporte impreso: matrícula, nombre, curso, edad y sexo.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rosterRow
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Router /reports/roster [get]
func rosterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roster, err := svc.Roster(r.Context())
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		out := make([]rosterRow, 0, len(roster))
		for _, s := range roster {
			out = append(out, rosterRow{
				ID:             s.ID,
				Name:           s.Name,
				DocumentNumber: s.DocumentNumber,
				Course:         s.Course,
				Age:            s.Age,
				Sex:            string(s.Sex),
			})
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// exportCSVHandler godoc
// @Summary Exportar alumnos a CSV
// @Tags reports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV con encabezado id,name,document_number,course,age,sex"
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Router /reports/students.csv [get]
func exportCSVHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Se arma en memoria para poder responder JSON si la consulta falla.
		var buf bytes.Buffer
		if _, err := svc.ExportCSV(r.Context(), &buf); err != nil {
			httpjson.Error(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="students.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
