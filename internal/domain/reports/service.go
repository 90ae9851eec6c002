package reports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"student-pet-records/internal/domain/students"
	"student-pet-records/internal/platform/logger"
)

// StudentSource es lo que reports necesita de students. Cada llamada consulta
// de nuevo; no hay cache.
type StudentSource interface {
	List(ctx context.Context) ([]students.Student, error)
	Count(ctx context.Context) (int, error)
	Ages(ctx context.Context) ([]*int, error)
}

type Service struct {
	src StudentSource
	log logger.Logger
}

func NewService(src StudentSource, log logger.Logger) *Service {
	return &Service{
		src: src,
		log: logger.OrNop(log).With(map[string]any{"module": "reports"}),
	}
}

// CountByAgeBracket devuelve las cinco etiquetas siempre presentes (0 si vacías).
func (s *Service) CountByAgeBracket(ctx context.Context) (map[string]int, error) {
	ages, err := s.src.Ages(ctx)
	if err != nil {
		s.log.Error("reports.age_brackets", map[string]any{"err": err})
		return nil, err
	}

	out := make(map[string]int, len(Brackets()))
	for _, b := range Brackets() {
		out[b] = 0
	}
	for _, a := range ages {
		out[BracketOf(a)]++
	}
	s.log.Debug("reports.age_brackets", map[string]any{"students": len(ages)})
	return out, nil
}

func (s *Service) TotalCount(ctx context.Context) (int, error) {
	n, err := s.src.Count(ctx)
	if err != nil {
		s.log.Error("reports.total", map[string]any{"err": err})
		return 0, err
	}
	return n, nil
}

// Roster son las filas del reporte impreso: sin foto, por matrícula.
func (s *Service) Roster(ctx context.Context) ([]students.Student, error) {
	list, err := s.src.List(ctx)
	if err != nil {
		s.log.Error("reports.roster", map[string]any{"err": err})
		return nil, err
	}

	out := make([]students.Student, len(list))
	for i, st := range list {
		st.Photo = nil
		out[i] = st
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var csvHeader = []string{"id", "name", "document_number", "course", "age", "sex"}

// ExportCSV escribe el roster como CSV (con encabezado) y devuelve cuántos
// alumnos escribió. Sin alumnos, solo se escribe el encabezado.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	roster, err := s.Roster(ctx)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	for _, st := range roster {
		rec := []string{st.ID, st.Name, st.DocumentNumber, st.Course, strconv.Itoa(st.Age), string(st.Sex)}
		if err := cw.Write(rec); err != nil {
			return 0, fmt.Errorf("write csv row %s: %w", st.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}

	s.log.Info("reports.export_csv", map[string]any{"rows": len(roster)})
	return len(roster), nil
}
