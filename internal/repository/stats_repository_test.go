package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageValue(t *testing.T, stage bson.D, name string) (interface{}, bool) {
	t.Helper()
	for _, e := range stage {
		if e.Key == name {
			return e.Value, true
		}
	}
	return nil, false
}

func TestTopTestsPipelineSortsThenLimits(t *testing.T) {
	pipeline := topTestsPipeline(6)

	sortIdx, limitIdx := -1, -1
	for i, stage := range pipeline {
		if _, ok := stageValue(t, stage, "$sort"); ok {
			sortIdx = i
		}
		if _, ok := stageValue(t, stage, "$limit"); ok {
			limitIdx = i
		}
	}

	require.NotEqual(t, -1, sortIdx, "pipeline has no $sort stage")
	require.NotEqual(t, -1, limitIdx, "pipeline has no $limit stage")
	assert.Less(t, sortIdx, limitIdx, "$limit must apply after $sort")

	sortVal, _ := stageValue(t, pipeline[sortIdx], "$sort")
	sortDoc, ok := sortVal.(bson.D)
	require.True(t, ok)
	order, found := stageValue(t, sortDoc, "totalBookings")
	require.True(t, found)
	assert.Equal(t, -1, order, "top tests must sort by bookings descending")

	limitVal, _ := stageValue(t, pipeline[limitIdx], "$limit")
	assert.Equal(t, 6, limitVal)
}

func TestTopTestsPipelineHonorsLimit(t *testing.T) {
	pipeline := topTestsPipeline(3)

	for _, stage := range pipeline {
		if v, ok := stageValue(t, stage, "$limit"); ok {
			assert.Equal(t, 3, v)
			return
		}
	}
	t.Fatal("pipeline has no $limit stage")
}

func TestBookingTotalsPipelineSortsDescending(t *testing.T) {
	pipeline := bookingTotalsPipeline()

	groupIdx, sortIdx := -1, -1
	for i, stage := range pipeline {
		if _, ok := stageValue(t, stage, "$group"); ok {
			groupIdx = i
		}
		if _, ok := stageValue(t, stage, "$sort"); ok {
			sortIdx = i
		}
	}

	require.NotEqual(t, -1, groupIdx, "pipeline has no $group stage")
	require.NotEqual(t, -1, sortIdx, "pipeline has no $sort stage")
	assert.Less(t, groupIdx, sortIdx)

	sortVal, _ := stageValue(t, pipeline[sortIdx], "$sort")
	sortDoc, ok := sortVal.(bson.D)
	require.True(t, ok)
	order, found := stageValue(t, sortDoc, "totalBookings")
	require.True(t, found)
	assert.Equal(t, -1, order)
}
