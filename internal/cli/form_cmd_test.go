package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/frat/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormSelection_SeededFromAssessment(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	app.Assessment.SetPilotType(ctx, domain.PilotIFR)
	require.NoError(t, app.Assessment.Toggle(ctx, "airport-towered"))

	sel := newFormSelection(app.Assessment)

	assert.Equal(t, domain.PilotIFR, sel.pilot)
	assert.Equal(t, domain.ExperienceUnder100, sel.experience)
	require.Len(t, sel.checked, len(domain.Categories))
	assert.Equal(t, []string{"airport-towered"}, *sel.checked[domain.CategoryAirport])
	assert.Empty(t, *sel.checked[domain.CategoryPilot])
}

func TestBuildAssessmentForm(t *testing.T) {
	app := testApp(t)
	sel := newFormSelection(app.Assessment)

	form := buildAssessmentForm(app.Assessment, sel)
	require.NotNil(t, form)
	assert.Equal(t, huh.StateNormal, form.State)
}

func TestApplyFormSelection(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Assessment.Toggle(ctx, "pilot-sleep"))

	sel := newFormSelection(app.Assessment)
	sel.pilot = domain.PilotIFR
	sel.experience = domain.ExperienceOver100
	*sel.checked[domain.CategoryPilot] = nil
	*sel.checked[domain.CategoryApproach] = []string{"approach-circling", "approach-precision"}

	require.NoError(t, applyFormSelection(ctx, app.Assessment, sel))

	assert.Equal(t, domain.AssessmentMode{PilotType: domain.PilotIFR, ExperienceBand: domain.ExperienceOver100}, app.Assessment.Mode())
	assert.False(t, app.Assessment.IsActive("pilot-sleep"))
	assert.True(t, app.Assessment.IsActive("approach-circling"))
	assert.True(t, app.Assessment.IsActive("approach-precision"))
	assert.Equal(t, 5, app.Assessment.GetScore().Display)
}

func TestApplyFormSelection_UnknownID(t *testing.T) {
	app := testApp(t)
	sel := newFormSelection(app.Assessment)
	*sel.checked[domain.CategoryVFR] = []string{"vfr-nope"}

	// Unknown ids are never offered by the form; they are simply not matched.
	require.NoError(t, applyFormSelection(context.Background(), app.Assessment, sel))
	assert.Empty(t, app.Assessment.Report().Factors)
}

func TestFormCmd_PrintsReport(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Assessment.Toggle(context.Background(), "approach-circling"))

	var ran bool
	app.RunForm = func(f *huh.Form) error {
		ran = true
		return nil
	}

	out, err := executeCmd(t, app, "form", "--pilot", "IFR")
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Contains(t, out, "Circling Approach")
	assert.Contains(t, out, "IFR Pilot")
	assert.True(t, app.Assessment.IsActive("approach-circling"))
}

func TestFormCmd_Aborted(t *testing.T) {
	app := testApp(t)
	app.RunForm = func(f *huh.Form) error { return huh.ErrUserAborted }

	out, err := executeCmd(t, app, "form")
	require.NoError(t, err)
	assert.Contains(t, out, "Assessment cancelled.")
	assert.NotContains(t, out, "RISK ASSESSMENT")
}
