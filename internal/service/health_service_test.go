package service_test

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"spendit-receipts/internal/service"
)

var _ = Describe("HealthService", func() {
	var (
		store *mockStore
		svc   *service.HealthService
		ctx   context.Context
	)

	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	BeforeEach(func() {
		ctx = context.Background()
		store = newMockStore()
		svc = service.NewHealthServiceWithDeps(store, 2*time.Second, "1.0.0", fixedTime{t: now}, zap.NewNop())
	})

	Describe("Check", func() {
		It("reports healthy when the database answers", func() {
			result := svc.Check(ctx)
			Expect(result.Status).To(Equal("healthy"))
			Expect(result.Database).To(Equal("connected"))
			Expect(result.Version).To(Equal("1.0.0"))
			Expect(result.Timestamp).To(Equal(now.Format(time.RFC3339)))
		})

		It("reports degraded when the ping fails", func() {
			store.pingErr = errors.New("dial tcp: connection refused")

			result := svc.Check(ctx)
			Expect(result.Status).To(Equal("degraded"))
			Expect(result.Database).To(Equal("error: dial tcp: connection refused"))
		})

		It("truncates long failure reasons", func() {
			store.pingErr = errors.New(strings.Repeat("x", 200))

			result := svc.Check(ctx)
			Expect(result.Database).To(HavePrefix("error: "))
			Expect(result.Database).To(HaveLen(len("error: ") + 50))
		})

		It("reports not configured when no pool exists", func() {
			store.available = false

			result := svc.Check(ctx)
			Expect(result.Status).To(Equal("degraded"))
			Expect(result.Database).To(Equal("not configured"))
		})
	})

	Describe("Ready", func() {
		It("always reports ready", func() {
			result := svc.Ready()
			Expect(result.Status).To(Equal("ready"))
			Expect(result.Timestamp).To(Equal(now.Format(time.RFC3339)))
		})
	})
})
