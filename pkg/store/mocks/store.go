package mocks

import "context"
import "github.com/intelsdi-x/gauss/pkg/fit"
import "github.com/stretchr/testify/mock"

// Store mock
type Store struct {
	mock.Mock
}

// Init provides a mock function with given fields: ctx
func (_m *Store) Init(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SaveTrainingData provides a mock function with given fields: ctx, training
func (_m *Store) SaveTrainingData(ctx context.Context, training []fit.Series) error {
	ret := _m.Called(ctx, training)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []fit.Series) error); ok {
		r0 = rf(ctx, training)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetTrainingData provides a mock function with given fields: ctx
func (_m *Store) GetTrainingData(ctx context.Context) ([]fit.Series, error) {
	ret := _m.Called(ctx)

	var r0 []fit.Series
	if rf, ok := ret.Get(0).(func(context.Context) []fit.Series); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]fit.Series)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SaveIdealFunctions provides a mock function with given fields: ctx, candidates
func (_m *Store) SaveIdealFunctions(ctx context.Context, candidates []fit.Series) error {
	ret := _m.Called(ctx, candidates)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []fit.Series) error); ok {
		r0 = rf(ctx, candidates)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetIdealFunctions provides a mock function with given fields: ctx
func (_m *Store) GetIdealFunctions(ctx context.Context) ([]fit.Series, error) {
	ret := _m.Called(ctx)

	var r0 []fit.Series
	if rf, ok := ret.Get(0).(func(context.Context) []fit.Series); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]fit.Series)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SaveSelections provides a mock function with given fields: ctx, selections
func (_m *Store) SaveSelections(ctx context.Context, selections []fit.Selection) error {
	ret := _m.Called(ctx, selections)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []fit.Selection) error); ok {
		r0 = rf(ctx, selections)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetSelections provides a mock function with given fields: ctx
func (_m *Store) GetSelections(ctx context.Context) ([]fit.Selection, error) {
	ret := _m.Called(ctx)

	var r0 []fit.Selection
	if rf, ok := ret.Get(0).(func(context.Context) []fit.Selection); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]fit.Selection)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SaveMappedPoints provides a mock function with given fields: ctx, points
func (_m *Store) SaveMappedPoints(ctx context.Context, points []fit.MappedPoint) error {
	ret := _m.Called(ctx, points)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []fit.MappedPoint) error); ok {
		r0 = rf(ctx, points)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetMappedPoints provides a mock function with given fields: ctx
func (_m *Store) GetMappedPoints(ctx context.Context) ([]fit.MappedPoint, error) {
	ret := _m.Called(ctx)

	var r0 []fit.MappedPoint
	if rf, ok := ret.Get(0).(func(context.Context) []fit.MappedPoint); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]fit.MappedPoint)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
