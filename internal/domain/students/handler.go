package students

import (
	"net/http"

	"student-pet-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /students. nested recibe el subrouter de
// /students/{studentID} para que otros módulos cuelguen rutas (ej. pets).
func RegisterRoutes(r chi.Router, svc *Service, nested ...func(chi.Router)) {
	r.Route("/students", func(sr chi.Router) {
		sr.Get("/", listStudentsHandler(svc))
		sr.Post("/", createStudentHandler(svc))

		sr.Route("/{studentID}", func(ir chi.Router) {
			ir.Get("/", getStudentHandler(svc))
			ir.Put("/", updateStudentHandler(svc))
			ir.Delete("/", deleteStudentHandler(svc))

			for _, n := range nested {
				n(ir)
			}
		})
	})
}

type createStudentRequest struct {
	ID             string `json:"id" validate:"required,max=32"`
	Name           string `json:"name" validate:"required,max=120"`
	DocumentNumber string `json:"document_number" validate:"max=32"`
	Course         string `json:"course" validate:"max=120"`
	Age            int    `json:"age" validate:"min=0,max=150"`
	Sex            string `json:"sex" validate:"required,oneof=M F"`
	Photo          []byte `json:"photo,omitempty" swaggertype:"string" format:"base64"`
}

type updateStudentRequest struct {
	Name           string `json:"name" validate:"required,max=120"`
	DocumentNumber string `json:"document_number" validate:"max=32"`
	Course         string `json:"course" validate:"max=120"`
	Age            int    `json:"age" validate:"min=0,max=150"`
	Sex            string `json:"sex" validate:"required,oneof=M F"`
	Photo          []byte `json:"photo,omitempty" swaggertype:"string" format:"base64"`
}

type studentResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DocumentNumber string `json:"document_number"`
	Course         string `json:"course"`
	Age            int    `json:"age"`
	Sex            string `json:"sex"`
	Photo          []byte `json:"photo" swaggertype:"string" format:"base64"`
}

// listStudentsHandler godoc
// @Summary Listar alumnos
// @Description Devuelve todos los alumnos ordenados por matrícula. No incluye la foto.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} studentResponse
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Failure 503 {object} httpjson.ErrorResponse "service unavailable"
// @Router /students [get]
func listStudentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		out := make([]studentResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toStudentResponse(s))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// createStudentHandler godoc
// @Summary Crear alumno
// @Description Inserta un alumno con la matrícula indicada en `id`. La foto viaja en base64.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body createStudentRequest true "Datos del alumno"
// @Success 201 {object} studentResponse
// @Failure 400 {object} httpjson.ErrorResponse "payload inválido"
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Failure 409 {object} httpjson.ErrorResponse "matrícula repetida"
// @Router /students [post]
func createStudentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createStudentRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		st, err := svc.Save(r.Context(), "", Student{
			ID:             req.ID,
			Name:           req.Name,
			DocumentNumber: req.DocumentNumber,
			Course:         req.Course,
			Age:            req.Age,
			Sex:            Sex(req.Sex),
			Photo:          req.Photo,
		})
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toStudentResponse(st))
	}
}

// getStudentHandler godoc
// @Summary Obtener alumno
// @Description Devuelve el alumno con su foto.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentID path string true "Matrícula"
// @Success 200 {object} studentResponse
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Failure 404 {object} httpjson.ErrorResponse "student not found"
// @Router /students/{studentID} [get]
func getStudentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, found, err := svc.Get(r.Context(), chi.URLParam(r, "studentID"))
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		if !found {
			httpjson.Fail(w, http.StatusNotFound, "student not found")
			return
		}

		httpjson.Write(w, http.StatusOK, toStudentResponse(st))
	}
}

// updateStudentHandler godoc
// @Summary Actualizar alumno
// @Description Reemplaza todos los datos del alumno. La matrícula no se modifica.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentID path string true "Matrícula"
// @Param payload body updateStudentRequest true "Datos del alumno"
// @Success 200 {object} studentResponse
// @Failure 400 {object} httpjson.ErrorResponse "payload inválido"
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Failure 404 {object} httpjson.ErrorResponse "student not found"
// @Router /students/{studentID} [put]
func updateStudentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "studentID")

		var req updateStudentRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		// El servicio ignora updates sobre matrículas inexistentes; por HTTP
		// preferimos avisar con 404.
		_, found, err := svc.Get(r.Context(), id)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		if !found {
			httpjson.Fail(w, http.StatusNotFound, "student not found")
			return
		}

		st, err := svc.Save(r.Context(), id, Student{
			Name:           req.Name,
			DocumentNumber: req.DocumentNumber,
			Course:         req.Course,
			Age:            req.Age,
			Sex:            Sex(req.Sex),
			Photo:          req.Photo,
		})
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toStudentResponse(st))
	}
}

// deleteStudentHandler godoc
// @Summary Eliminar alumno
// @Description Borra el alumno. Sus mascotas no se borran. Idempotente.
// @Tags students
// @Security BearerAuth
// @Param studentID path string true "Matrícula"
// @Success 204
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Router /students/{studentID} [delete]
func deleteStudentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "studentID")); err != nil {
			httpjson.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toStudentResponse(s Student) studentResponse {
	return studentResponse{
		ID:             s.ID,
		Name:           s.Name,
		DocumentNumber: s.DocumentNumber,
		Course:         s.Course,
		Age:            s.Age,
		Sex:            string(s.Sex),
		Photo:          s.Photo,
	}
}
