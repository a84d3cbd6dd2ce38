// Package refdata resolves company and project presentation fields for
// invoice headers. The backing data arrives from the backend once per run;
// the store itself is read-only after construction.
package refdata

import (
	"fmt"

	"github.com/rezonia/invoice-issuer/internal/model"
)

// Company carries the issuing-company presentation fields printed on an
// invoice header.
type Company struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	TIN     string `json:"tin"`
}

// Project carries the project presentation fields.
type Project struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	CompanyCode int    `json:"company_code"`
}

// Store is an immutable lookup over company and project reference data.
type Store struct {
	companies map[int]Company
	projects  map[string]Project
}

// NewStore builds a store from backend reference rows.
func NewStore(companies []Company, projects []Project) *Store {
	s := &Store{
		companies: make(map[int]Company, len(companies)),
		projects:  make(map[string]Project, len(projects)),
	}
	for _, c := range companies {
		s.companies[c.Code] = c
	}
	for _, p := range projects {
		s.projects[p.Code] = p
	}
	return s
}

// Company resolves a company by code.
func (s *Store) Company(code int) (Company, error) {
	c, ok := s.companies[code]
	if !ok {
		return Company{}, model.NewLookupError("company", fmt.Sprintf("%02d", code))
	}
	return c, nil
}

// Project resolves a project by code.
func (s *Store) Project(code string) (Project, error) {
	p, ok := s.projects[code]
	if !ok {
		return Project{}, model.NewLookupError("project", code)
	}
	return p, nil
}
