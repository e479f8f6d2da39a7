package period

import (
	"time"

	"github.com/google/uuid"
)

// PayrollPeriod adalah rentang tanggal yang payroll-nya dihitung satu kali.
// Setelah is_closed = true, periode beku: tidak ada record baru maupun update.
//
// Tabel membawa exclusion constraint ex_period_range di atas
// daterange(period_start, period_end, '[]') sebagai penjaga non-overlap
// di level database; pelanggarannya dipetakan ke ErrPeriodOverlap.
type PayrollPeriod struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Year  int       `gorm:"not null"`
	Month int       `gorm:"not null"`

	PeriodStart time.Time `gorm:"type:date;not null"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	IsClosed bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayrollPeriod) TableName() string {
	return "payroll_periods"
}
