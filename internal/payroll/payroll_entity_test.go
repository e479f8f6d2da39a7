package payroll

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestPayrollRecord_DeclaresCascadeFKs(t *testing.T) {
	s, err := schema.Parse(&PayrollRecord{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	for _, name := range []string{"Details", "Employee"} {
		rel, ok := s.Relationships.Relations[name]
		assert.True(t, ok, name)

		constraint := rel.ParseConstraint()
		assert.NotNil(t, constraint, name)
		assert.Equal(t, "CASCADE", constraint.OnDelete, name)
	}
}

func TestPayrollDetail_DeclaresCascadeFK(t *testing.T) {
	s, err := schema.Parse(&PayrollDetail{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	rel, ok := s.Relationships.Relations["SalaryComponent"]
	assert.True(t, ok)

	constraint := rel.ParseConstraint()
	assert.NotNil(t, constraint)
	assert.Equal(t, "CASCADE", constraint.OnDelete)
}
