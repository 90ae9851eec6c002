package pets

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"student-pet-records/internal/errs"
	"student-pet-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// OwnerRoutes cuelga GET /pets bajo /students/{studentID}.
func OwnerRoutes(svc *Service) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/pets", listOwnerPetsHandler(svc))
	}
}

type petRequest struct {
	Nickname  string `json:"nickname" validate:"required,max=80"`
	Breed     string `json:"breed" validate:"max=80"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"` // YYYY-MM-DD opcional
	Photo     []byte `json:"photo,omitempty" swaggertype:"string" format:"base64"`
	OwnerID   string `json:"owner_id" validate:"required"`
}

type petResponse struct {
	ID        int64   `json:"id"`
	Nickname  string  `json:"nickname"`
	Breed     string  `json:"breed"`
	BirthDate *string `json:"birth_date,omitempty"`
	Photo     []byte  `json:"photo" swaggertype:"string" format:"base64"`
	OwnerID   string  `json:"owner_id"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas ordenadas por ID, sin foto.
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} petResponse
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPetResponses(items))
	}
}

// listOwnerPetsHandler godoc
// @Summary Mascotas de un alumno
// @Description Vista maestro/detalle: mascotas cuyo dueño es el alumno indicado. Lista vacía si no tiene.
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param studentID path string true "Matrícula del dueño"
// @Success 200 {array} petResponse
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Router /students/{studentID}/pets [get]
func listOwnerPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "studentID"))
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPetResponses(items))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Inserta una mascota; el ID lo genera la base. owner_id debe ser la matrícula de un alumno existente.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body petRequest true "Datos de la mascota; birth_date YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpjson.ErrorResponse "payload inválido / owner student not found"
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodePet(r)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		saved, err := svc.Save(r.Context(), p)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toPetResponse(saved))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpjson.ErrorResponse "petID inválido"
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Failure 404 {object} httpjson.ErrorResponse "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := petIDParam(r)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		p, found, err := svc.Get(r.Context(), id)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		if !found {
			httpjson.Fail(w, http.StatusNotFound, "pet not found")
			return
		}
		httpjson.Write(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza todos los campos de la mascota.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpjson.ErrorResponse "payload inválido / owner student not found"
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Failure 404 {object} httpjson.ErrorResponse "pet not found"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := petIDParam(r)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		p, err := decodePet(r)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		// Save ignora IDs inexistentes; por HTTP respondemos 404.
		if _, found, err := svc.Get(r.Context(), id); err != nil {
			httpjson.Error(w, err)
			return
		} else if !found {
			httpjson.Fail(w, http.StatusNotFound, "pet not found")
			return
		}

		p.ID = id
		saved, err := svc.Save(r.Context(), p)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPetResponse(saved))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Idempotente.
// @Tags pets
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Success 204
// @Failure 400 {object} httpjson.ErrorResponse "petID inválido"
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := petIDParam(r)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			httpjson.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func decodePet(r *http.Request) (Pet, error) {
	var req petRequest
	if err := httpjson.Decode(r, &req); err != nil {
		return Pet{}, err
	}

	var bd *time.Time
	if s := strings.TrimSpace(req.BirthDate); s != "" {
		// ya validado por el tag datetime
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return Pet{}, errs.Invalid("birth_date must be YYYY-MM-DD", nil)
		}
		bd = &t
	}

	return Pet{
		Nickname:  req.Nickname,
		Breed:     req.Breed,
		BirthDate: bd,
		Photo:     req.Photo,
		OwnerID:   req.OwnerID,
	}, nil
}

func petIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Invalid("petID must be a positive integer", nil)
	}
	return id, nil
}

func toPetResponse(p Pet) petResponse {
	out := petResponse{
		ID:       p.ID,
		Nickname: p.Nickname,
		Breed:    p.Breed,
		Photo:    p.Photo,
		OwnerID:  p.OwnerID,
	}
	if p.BirthDate != nil {
		s := p.BirthDate.Format(dateLayout)
		out.BirthDate = &s
	}
	return out
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}
