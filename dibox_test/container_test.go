package dibox_test

import (
	"testing"

	"github.com/centraunit/dibox"
	"github.com/centraunit/dibox/mock"
	"github.com/stretchr/testify/suite"
)

type ContainerTestSuite struct {
	suite.Suite
}

func (s *ContainerTestSuite) TestBasicBindAndResolve() {
	c := dibox.New()
	err := dibox.BindTransient(c, func(r *dibox.Resolver) (mock.Database, error) {
		return &mock.MemoryDB{}, nil
	})
	s.NoError(err)

	db, err := dibox.Resolve[mock.Database](c)
	s.NoError(err)
	s.False(db.IsZero())
	s.NoError(db.Value().Connect())
	s.True(db.Value().(*mock.MemoryDB).IsConnected())
}

func (s *ContainerTestSuite) TestContains() {
	c := dibox.New()
	s.False(dibox.Contains[*mock.Config](c))

	s.NoError(dibox.BindInstance(c, &mock.Config{DSN: "memory://"}))
	s.True(dibox.Contains[*mock.Config](c))
	s.False(dibox.Contains[mock.Database](c))
}

func (s *ContainerTestSuite) TestBindInstance() {
	c := dibox.New()
	conf := &mock.Config{DSN: "memory://fixed", CacheTTL: 60}
	s.NoError(dibox.BindInstance(c, conf))

	a, err := dibox.Resolve[*mock.Config](c)
	s.NoError(err)
	b, err := dibox.Resolve[*mock.Config](c)
	s.NoError(err)

	s.True(a.Same(b))
	s.Equal("memory://fixed", a.Value().DSN)
	s.Same(conf, a.Value())
}

func (s *ContainerTestSuite) TestNestedDependencies() {
	c := dibox.New()
	s.NoError(dibox.BindInstance(c, &mock.Config{DSN: "memory://nested"}))
	s.NoError(dibox.BindTransient(c, func(r *dibox.Resolver) (mock.Database, error) {
		conf, err := dibox.Resolve[*mock.Config](r)
		if err != nil {
			return nil, err
		}
		return &mock.MemoryDB{Conf: conf}, nil
	}))

	db, err := dibox.Resolve[mock.Database](c)
	s.NoError(err)
	s.Equal("memory://nested", db.Value().DSN())
}

func (s *ContainerTestSuite) TestDeepDependencyChain() {
	c := dibox.New()
	s.NoError(dibox.BindTransient(c, func(r *dibox.Resolver) (*mock.DeepService3, error) {
		return &mock.DeepService3{Value: "deep"}, nil
	}))
	s.NoError(dibox.BindTransient(c, func(r *dibox.Resolver) (*mock.DeepService2, error) {
		next, err := dibox.Resolve[*mock.DeepService3](r)
		if err != nil {
			return nil, err
		}
		return &mock.DeepService2{Next: next}, nil
	}))
	s.NoError(dibox.BindTransient(c, func(r *dibox.Resolver) (*mock.DeepService1, error) {
		next, err := dibox.Resolve[*mock.DeepService2](r)
		if err != nil {
			return nil, err
		}
		return &mock.DeepService1{Next: next}, nil
	}))

	svc, err := dibox.Resolve[*mock.DeepService1](c)
	s.NoError(err)
	s.Equal("deep", svc.Value().Next.Value().Next.Value().Value)
}

func (s *ContainerTestSuite) TestResolverExposesContainer() {
	c := dibox.New()
	s.NoError(dibox.BindTransient(c, func(r *dibox.Resolver) (*mock.DeepService3, error) {
		s.Same(c, r.Container())
		return &mock.DeepService3{}, nil
	}))

	_, err := dibox.Resolve[*mock.DeepService3](c)
	s.NoError(err)
}

type infraProvider struct{}

func (infraProvider) Register(c *dibox.Container) error {
	if err := dibox.BindInstance(c, &mock.Config{DSN: "memory://provider"}); err != nil {
		return err
	}
	return dibox.BindSingleton(c, func(r *dibox.Resolver) (mock.Cache, error) {
		return mock.NewMemoryCache(), nil
	})
}

type brokenProvider struct{}

func (brokenProvider) Register(c *dibox.Container) error {
	// Collides with infraProvider's Config binding.
	return dibox.BindInstance(c, &mock.Config{})
}

func (s *ContainerTestSuite) TestInstallProviders() {
	s.Run("RegistersAll", func() {
		c := dibox.New()
		s.NoError(c.Install(infraProvider{}))
		s.True(dibox.Contains[*mock.Config](c))
		s.True(dibox.Contains[mock.Cache](c))
	})

	s.Run("StopsAtFirstError", func() {
		c := dibox.New()
		err := c.Install(infraProvider{}, brokenProvider{})
		s.Error(err)

		conf, resolveErr := dibox.Resolve[*mock.Config](c)
		s.NoError(resolveErr)
		s.Equal("memory://provider", conf.Value().DSN)
	})
}

func (s *ContainerTestSuite) TestBoot() {
	s.Run("ConstructsAllSingletons", func() {
		c := dibox.New()
		counter := &mock.Counter{}
		s.NoError(dibox.BindSingleton(c, func(r *dibox.Resolver) (*mock.Config, error) {
			counter.Inc()
			return &mock.Config{DSN: "memory://boot"}, nil
		}))
		s.NoError(dibox.BindSingleton(c, func(r *dibox.Resolver) (mock.Cache, error) {
			counter.Inc()
			return mock.NewMemoryCache(), nil
		}))
		s.NoError(dibox.BindTransient(c, func(r *dibox.Resolver) (*mock.DeepService3, error) {
			counter.Inc()
			return &mock.DeepService3{}, nil
		}))

		s.NoError(c.Boot())
		// Only the two singletons were constructed.
		s.Equal(int64(2), counter.Count())

		conf, err := dibox.Resolve[*mock.Config](c)
		s.NoError(err)
		s.Equal("memory://boot", conf.Value().DSN)
		s.Equal(int64(2), counter.Count())
	})

	s.Run("SkipsAlreadyResolved", func() {
		c := dibox.New()
		counter := &mock.Counter{}
		s.NoError(dibox.BindSingleton(c, func(r *dibox.Resolver) (*mock.Config, error) {
			counter.Inc()
			return &mock.Config{}, nil
		}))

		_, err := dibox.Resolve[*mock.Config](c)
		s.NoError(err)
		s.NoError(c.Boot())
		s.Equal(int64(1), counter.Count())
	})

	s.Run("StopsAtFirstFailure", func() {
		c := dibox.New()
		s.NoError(dibox.BindSingleton(c, func(r *dibox.Resolver) (*mock.FailingDep, error) {
			return nil, mock.ErrBoom
		}))

		err := c.Boot()
		s.ErrorIs(err, mock.ErrBoom)
	})
}

func TestContainerSuite(t *testing.T) {
	suite.Run(t, new(ContainerTestSuite))
}
