package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var testStore Store

func TestMain(m *testing.M) {
	// 使用测试数据库连接
	testDBSource := os.Getenv("TEST_DB_SOURCE")
	if testDBSource == "" {
		// 显式走 unix socket，避免驱动将空 host 解析为 TCP/localhost 导致密码认证失败
		testDBSource = "postgresql:///foodbridge_test?sslmode=disable&host=/var/run/postgresql"
	}

	connPool, err := pgxpool.New(context.Background(), testDBSource)
	if err != nil {
		log.Fatal("cannot connect to test db:", err)
	}

	testStore = NewStore(connPool)
	os.Exit(m.Run())
}
