package assignment

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestEmployeeSalaryComponent_DeclaresCascadeFKs(t *testing.T) {
	s, err := schema.Parse(&EmployeeSalaryComponent{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	// Repo Delete pada employee/salarycomponent mengandalkan cascade ini
	for _, name := range []string{"Employee", "SalaryComponent"} {
		rel, ok := s.Relationships.Relations[name]
		assert.True(t, ok, name)

		constraint := rel.ParseConstraint()
		assert.NotNil(t, constraint, name)
		assert.Equal(t, "CASCADE", constraint.OnDelete, name)
	}
}
