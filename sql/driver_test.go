package sql

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origin-labs/queryorigin-go/origin"
)

// testDriver is a simple driver that returns a canned connection.
type testDriver struct {
	conn    driver.Conn
	openErr error
}

func (d *testDriver) Open(_ string) (driver.Conn, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.conn, nil
}

// testConn is the minimal driver.Conn used by driver-level tests.
type testConn struct {
	prepared []string
}

func (c *testConn) Prepare(query string) (driver.Stmt, error) {
	c.prepared = append(c.prepared, query)
	return &testStmt{}, nil
}
func (c *testConn) Close() error              { return nil }
func (c *testConn) Begin() (driver.Tx, error) { return &testTx{}, nil }

type testStmt struct{}

func (s *testStmt) Close() error                                 { return nil }
func (s *testStmt) NumInput() int                                { return -1 }
func (s *testStmt) Exec(_ []driver.Value) (driver.Result, error) { return driver.RowsAffected(1), nil }
func (s *testStmt) Query(_ []driver.Value) (driver.Rows, error)  { return &testRows{}, nil }

type testTx struct{}

func (t *testTx) Commit() error   { return nil }
func (t *testTx) Rollback() error { return nil }

type testRows struct{}

func (r *testRows) Columns() []string           { return nil }
func (r *testRows) Close() error                { return nil }
func (r *testRows) Next(_ []driver.Value) error { return nil }

func TestWrapDriver(t *testing.T) {
	type args struct {
		opts []Option
	}

	tests := []struct {
		name string
		args args
	}{
		{
			name: "given driver with options, then returns wrapped driver",
			args: args{opts: []Option{WithName("primary")}},
		},
		{
			name: "given driver without options, then returns wrapped driver",
			args: args{opts: nil},
		},
		{
			name: "given shared annotator, then returns wrapped driver",
			args: args{opts: []Option{WithAnnotator(origin.New())}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDrv := &testDriver{conn: &testConn{}}

			wrapped := WrapDriver(mockDrv, tt.args.opts...)

			require.NotNil(t, wrapped)
			assert.Implements(t, (*driver.Driver)(nil), wrapped)
		})
	}
}

func TestOriginDriver_Open(t *testing.T) {
	type args struct {
		dsn     string
		openErr error
	}

	tests := []struct {
		name    string
		args    args
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "given successful open, then returns wrapped connection",
			args:    args{dsn: "test-dsn"},
			wantErr: assert.NoError,
		},
		{
			name:    "given error on open, then returns error unchanged",
			args:    args{dsn: "test-dsn", openErr: assert.AnError},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDrv := &testDriver{conn: &testConn{}, openErr: tt.args.openErr}
			cfg := newConfig()
			originDrv := &originDriver{driver: mockDrv, cfg: cfg}

			conn, err := originDrv.Open(tt.args.dsn)

			tt.wantErr(t, err)
			if err == nil {
				require.NotNil(t, conn)
				assert.IsType(t, &originConn{}, conn)
			} else {
				assert.ErrorIs(t, err, tt.args.openErr)
			}
		})
	}
}

func TestOriginDriver_OpenConnector(t *testing.T) {
	t.Run("given driver without DriverContext, then returns dsnConnector", func(t *testing.T) {
		mockDrv := &testDriver{conn: &testConn{}}
		cfg := newConfig()
		originDrv := &originDriver{driver: mockDrv, cfg: cfg}

		connector, err := originDrv.OpenConnector("test-dsn")

		require.NoError(t, err)
		require.NotNil(t, connector)
		assert.IsType(t, &dsnConnector{}, connector)
	})
}

func TestDsnConnector_Connect(t *testing.T) {
	type args struct {
		openErr error
	}

	tests := []struct {
		name    string
		args    args
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "given valid dsn, then returns wrapped connection",
			args:    args{},
			wantErr: assert.NoError,
		},
		{
			name:    "given error on connect, then returns error",
			args:    args{openErr: assert.AnError},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDrv := &testDriver{conn: &testConn{}, openErr: tt.args.openErr}
			cfg := newConfig()
			originDrv := &originDriver{driver: mockDrv, cfg: cfg}
			connector := &dsnConnector{dsn: "test-dsn", driver: originDrv}

			conn, err := connector.Connect(context.TODO())

			tt.wantErr(t, err)
			if err == nil {
				require.NotNil(t, conn)
				assert.IsType(t, &originConn{}, conn)
			} else {
				assert.Nil(t, conn)
			}
		})
	}
}

func TestDsnConnector_Driver(t *testing.T) {
	t.Run("returns parent originDriver", func(t *testing.T) {
		mockDrv := &testDriver{conn: &testConn{}}
		cfg := newConfig()
		originDrv := &originDriver{driver: mockDrv, cfg: cfg}
		connector := &dsnConnector{dsn: "test", driver: originDrv}

		assert.Equal(t, originDrv, connector.Driver())
	})
}

func TestNewConfig_Options(t *testing.T) {
	t.Run("given no options, then builds its own annotator", func(t *testing.T) {
		cfg := newConfig()

		require.NotNil(t, cfg)
		assert.NotNil(t, cfg.Annotator)
		assert.Empty(t, cfg.Name)
	})

	t.Run("given WithName, then sets registration name", func(t *testing.T) {
		cfg := newConfig(WithName("replica"))

		assert.Equal(t, "replica", cfg.Name)
	})

	t.Run("given WithAnnotator, then shares the annotator", func(t *testing.T) {
		shared := origin.New()

		cfg := newConfig(WithAnnotator(shared))

		assert.Same(t, shared, cfg.Annotator)
	})
}
