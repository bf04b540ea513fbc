package roundservice

import (
	"bytes"
	"context"
	"testing"

	scoringdomain "github.com/Black-And-White-Club/scorecard/app/modules/scoring/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportScorecard(t *testing.T) {
	deps := newTestDeps()
	fx := newRoundFixture(scoringdomain.CompetitionStableford, 0, nil)
	fx.score(4, 3, 4, 5, 4, 5, 3, 5, 4, 5)
	fx.holes[1].Points = ptr(2)
	fx.holes[2].TotalPutts = ptr(3)
	fx.install(deps.repo)

	card, err := deps.service().ExportScorecard(context.Background(), fx.round.ID)
	require.NoError(t, err)
	assert.Equal(t, "scorecard-2024-03-09-"+fx.round.ID.String()[:8]+".xlsx", card.Filename)
	assert.Equal(t, xlsxMIME, card.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(card.Data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{scorecardSheet, tiger5Sheet}, f.GetSheetList())

	rows, err := f.GetRows(scorecardSheet)
	require.NoError(t, err)

	assert.Equal(t, "Metropolitan Golf Club (Blue)", rows[0][0])
	assert.Equal(t, []string{"Hole", "Par", "SI", "Distance", "Score", "Putts", "Points"}, rows[3])
	assert.Equal(t, []string{"1", "4", "7", "300", "4", "", "2"}, rows[4])

	// Header rows, nine holes, OUT, nine holes, IN, TOTAL.
	require.Len(t, rows, 4+9+1+9+1+1)
	assert.Equal(t, []string{"OUT", "37", "", "2736", "37", "3", "18"}, rows[13])
	assert.Equal(t, "IN", rows[23][0])
	assert.Equal(t, "5", rows[23][4])
	assert.Equal(t, []string{"TOTAL", "72", "", "5553", "42", "3", "19"}, rows[24])

	tiger, err := f.GetRows(tiger5Sheet)
	require.NoError(t, err)
	assert.Equal(t, "Hole", tiger[0][0])
	assert.Equal(t, []string{"2", "", "", "X"}, tiger[2])
	assert.Equal(t, "Grade", tiger[len(tiger)-1][0])
	assert.Equal(t, scoringdomain.GradeExcellent, tiger[len(tiger)-1][1])
}
