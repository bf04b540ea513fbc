package courseintegrationtests

import (
	"context"
	"testing"

	courseservice "github.com/Black-And-White-Club/scorecard/app/modules/course/application"
	coursedb "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/repositories"
	"github.com/Black-And-White-Club/scorecard/integration_tests/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(env *testutils.TestEnvironment) courseservice.Service {
	return courseservice.NewCourseService(coursedb.NewRepository(env.DB), env.Logger, env.Metrics, env.Tracer, env.DB)
}

func TestSeededCourseHoles(t *testing.T) {
	env := GetTestEnv(t)
	ctx := context.Background()
	seed, err := env.Seed(ctx)
	require.NoError(t, err)

	holes, err := newService(env).ListHoles(ctx, seed.CourseID, seed.TeeID)
	require.NoError(t, err)
	require.Len(t, holes, 18)

	par := 0
	seen := map[int]bool{}
	for i, h := range holes {
		assert.Equal(t, i+1, h.HoleNumber)
		par += h.Par
		require.NotNil(t, h.StrokeIndex)
		seen[*h.StrokeIndex] = true
	}
	assert.Equal(t, 72, par)
	assert.Len(t, seen, 18)
}

func TestAddHolesToNewTee(t *testing.T) {
	env := GetTestEnv(t)
	ctx := context.Background()
	svc := newService(env)

	course, err := svc.CreateCourse(ctx, courseservice.CreateCourseRequest{Name: "Royal Melbourne"})
	require.NoError(t, err)
	tee, err := svc.CreateTee(ctx, course.ID, courseservice.CreateTeeRequest{Name: "Black"})
	require.NoError(t, err)

	si := func(v int) *int { return &v }
	added, err := svc.AddHoles(ctx, course.ID, tee.ID, []courseservice.HoleInput{
		{HoleNumber: 1, Par: 4, StrokeIndex: si(5)},
		{HoleNumber: 2, Par: 3, StrokeIndex: si(17)},
	})
	require.NoError(t, err)
	assert.Len(t, added, 2)

	_, err = svc.AddHoles(ctx, course.ID, tee.ID, []courseservice.HoleInput{{HoleNumber: 2, Par: 4, StrokeIndex: si(3)}})
	assert.ErrorIs(t, err, courseservice.ErrDuplicateHoleNumber)

	holes, err := svc.ListHoles(ctx, course.ID, tee.ID)
	require.NoError(t, err)
	assert.Len(t, holes, 2, "a rejected batch must not be partly stored")

	updated, err := svc.UpdateHole(ctx, course.ID, tee.ID, 2, courseservice.UpdateHoleRequest{Par: si(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Par)
	assert.Equal(t, 17, *updated.StrokeIndex)

	_, err = svc.ListHoles(ctx, uuid.New(), tee.ID)
	assert.ErrorIs(t, err, courseservice.ErrTeeNotFound)
}
