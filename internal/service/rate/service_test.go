package rate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/employee"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/rate"
	"github.com/mawarid-ops/manpower-backend-go/internal/fixtures"
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/validator"
)

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	s.employees[emp.ID] = emp
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range s.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range s.employees {
		if emp.Status == employee.StatusActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (s *stubEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	emp, ok := s.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Status = status
	s.employees[id] = emp
	return nil
}

type stubRateRepo struct {
	rates       map[string]rate.HourlyRate
	multipliers []rate.OvertimeMultiplier
	settings    rate.Settings
	nextID      int
}

func newStubRateRepo() *stubRateRepo {
	return &stubRateRepo{
		rates:       make(map[string]rate.HourlyRate),
		multipliers: fixtures.DefaultMultipliers(),
		settings:    fixtures.DefaultSettings(),
	}
}

func (s *stubRateRepo) CreateRate(ctx context.Context, r rate.HourlyRate) (rate.HourlyRate, error) {
	s.nextID++
	r.ID = string(rune('a' + s.nextID))
	s.rates[r.ID] = r
	return r, nil
}

func (s *stubRateRepo) GetRateByID(ctx context.Context, id string) (rate.HourlyRate, error) {
	r, ok := s.rates[id]
	if !ok {
		return rate.HourlyRate{}, rate.ErrRateNotFound
	}
	return r, nil
}

func (s *stubRateRepo) ListRatesByEmployee(ctx context.Context, employeeID string) ([]rate.HourlyRate, error) {
	var out []rate.HourlyRate
	for _, r := range s.rates {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRateRepo) ActivateRate(ctx context.Context, id string) (rate.HourlyRate, error) {
	target, ok := s.rates[id]
	if !ok {
		return rate.HourlyRate{}, rate.ErrRateNotFound
	}
	for rid, r := range s.rates {
		if r.EmployeeID == target.EmployeeID && r.Status == rate.StatusActive {
			r.Status = rate.StatusExpired
			s.rates[rid] = r
		}
	}
	target.Status = rate.StatusActive
	s.rates[id] = target
	return target, nil
}

func (s *stubRateRepo) ListMultipliers(ctx context.Context) ([]rate.OvertimeMultiplier, error) {
	return s.multipliers, nil
}

func (s *stubRateRepo) SetDefaultMultiplier(ctx context.Context, id string) (rate.OvertimeMultiplier, error) {
	var updated rate.OvertimeMultiplier
	found := false
	for i := range s.multipliers {
		s.multipliers[i].IsDefault = s.multipliers[i].ID == id
		if s.multipliers[i].IsDefault {
			updated = s.multipliers[i]
			found = true
		}
	}
	if !found {
		return rate.OvertimeMultiplier{}, rate.ErrMultiplierNotFound
	}
	return updated, nil
}

func (s *stubRateRepo) GetDefaultMultiplier(ctx context.Context) (rate.OvertimeMultiplier, error) {
	for _, m := range s.multipliers {
		if m.IsDefault {
			return m, nil
		}
	}
	return rate.OvertimeMultiplier{}, rate.ErrMultiplierNotFound
}

func (s *stubRateRepo) GetSettings(ctx context.Context) (rate.Settings, error) {
	return s.settings, nil
}

func (s *stubRateRepo) UpdateStandardHours(ctx context.Context, hours int) (rate.Settings, error) {
	s.settings.StandardMonthlyHours = hours
	return s.settings, nil
}

func newTestRateService() (rate.RateService, *stubRateRepo) {
	repo := newStubRateRepo()
	employees := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Ahmed Hassan", Status: employee.StatusActive},
	}}
	return NewRateService(repo, employees), repo
}

func TestCreateRate_StoresDraft(t *testing.T) {
	svc, repo := newTestRateService()

	resp, err := svc.CreateRate(context.Background(), rate.CreateRateRequest{
		EmployeeID:    "emp-1",
		Wage:          25,
		EffectiveDate: "2026-04-01",
	})
	require.NoError(t, err)

	assert.Equal(t, string(rate.StatusDraft), resp.Status)
	assert.Equal(t, "2026-04-01", resp.EffectiveDate)
	assert.Len(t, repo.rates, 1)
}

func TestCreateRate_WageBounds(t *testing.T) {
	svc, _ := newTestRateService()

	cases := []struct {
		wage float64
		ok   bool
	}{
		{17.99, false},
		{18, true},
		{500, true},
		{500.01, false},
	}
	for _, c := range cases {
		_, err := svc.CreateRate(context.Background(), rate.CreateRateRequest{
			EmployeeID:    "emp-1",
			Wage:          c.wage,
			EffectiveDate: "2026-04-01",
		})
		if c.ok {
			assert.NoError(t, err, "wage %.2f", c.wage)
		} else {
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs, "wage %.2f", c.wage)
			assert.Equal(t, "wage", verrs[0].Field)
		}
	}
}

func TestCreateRate_UnknownEmployee(t *testing.T) {
	svc, _ := newTestRateService()

	_, err := svc.CreateRate(context.Background(), rate.CreateRateRequest{
		EmployeeID:    "ghost",
		Wage:          25,
		EffectiveDate: "2026-04-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestActivateRate_OnlyDrafts(t *testing.T) {
	svc, repo := newTestRateService()

	created, err := svc.CreateRate(context.Background(), rate.CreateRateRequest{
		EmployeeID:    "emp-1",
		Wage:          25,
		EffectiveDate: "2026-04-01",
	})
	require.NoError(t, err)

	activated, err := svc.ActivateRate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(rate.StatusActive), activated.Status)

	// Already active: a second activation is rejected.
	_, err = svc.ActivateRate(context.Background(), created.ID)
	assert.ErrorIs(t, err, rate.ErrRateNotDraft)

	assert.Equal(t, rate.StatusActive, repo.rates[created.ID].Status)
}

func TestActivateRate_ExpiresPreviousActive(t *testing.T) {
	svc, repo := newTestRateService()

	first, err := svc.CreateRate(context.Background(), rate.CreateRateRequest{
		EmployeeID: "emp-1", Wage: 25, EffectiveDate: "2026-04-01",
	})
	require.NoError(t, err)
	_, err = svc.ActivateRate(context.Background(), first.ID)
	require.NoError(t, err)

	second, err := svc.CreateRate(context.Background(), rate.CreateRateRequest{
		EmployeeID: "emp-1", Wage: 30, EffectiveDate: "2026-05-01",
	})
	require.NoError(t, err)
	_, err = svc.ActivateRate(context.Background(), second.ID)
	require.NoError(t, err)

	assert.Equal(t, rate.StatusExpired, repo.rates[first.ID].Status)
	assert.Equal(t, rate.StatusActive, repo.rates[second.ID].Status)
}

func TestSetDefaultMultiplier_RejectsNonCompliant(t *testing.T) {
	svc, repo := newTestRateService()

	_, err := svc.SetDefaultMultiplier(context.Background(), "multiplier-regular")
	assert.ErrorIs(t, err, rate.ErrMultiplierNotCompliant)

	// The previous default is untouched.
	def, err := repo.GetDefaultMultiplier(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "multiplier-standard-ot", def.ID)
}

func TestSetDefaultMultiplier_SwitchesDefault(t *testing.T) {
	svc, repo := newTestRateService()

	resp, err := svc.SetDefaultMultiplier(context.Background(), "multiplier-holiday-ot")
	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.InDelta(t, 2.0, resp.Value, 1e-9)

	def, err := repo.GetDefaultMultiplier(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "multiplier-holiday-ot", def.ID)
}

func TestSetDefaultMultiplier_UnknownID(t *testing.T) {
	svc, _ := newTestRateService()

	_, err := svc.SetDefaultMultiplier(context.Background(), "nope")
	assert.ErrorIs(t, err, rate.ErrMultiplierNotFound)
}

func TestUpdateStandardHours_BlocksOutOfRange(t *testing.T) {
	svc, repo := newTestRateService()

	for _, hours := range []int{119, 221, 0, -5} {
		_, err := svc.UpdateStandardHours(context.Background(), rate.UpdateStandardHoursRequest{
			StandardMonthlyHours: hours,
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, "hours %d", hours)
	}
	// Nothing was applied.
	assert.Equal(t, 176, repo.settings.StandardMonthlyHours)

	resp, err := svc.UpdateStandardHours(context.Background(), rate.UpdateStandardHoursRequest{
		StandardMonthlyHours: 192,
	})
	require.NoError(t, err)
	assert.Equal(t, 192, resp.StandardMonthlyHours)
}
