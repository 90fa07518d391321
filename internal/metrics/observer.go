// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"strconv"
	"time"
)

// Observer forwards store and service events to the package collectors.
// It satisfies store.CacheObserver and service.PushObserver.
type Observer struct{}

func NewObserver() *Observer {
	return &Observer{}
}

func (o *Observer) CacheHit() {
	SnapshotCacheHitsTotal.Inc()
}

func (o *Observer) CacheMiss() {
	SnapshotCacheMissesTotal.Inc()
}

func (o *Observer) SnapshotPushed(namespace string, length int) {
	SnapshotPushesTotal.WithLabelValues(namespace).Inc()
	SnapshotLength.WithLabelValues(namespace).Set(float64(length))
}

// ObserveHTTP records one finished HTTP request. route is the matched route
// pattern, not the raw path.
func (o *Observer) ObserveHTTP(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveRPC records one finished gRPC call.
func (o *Observer) ObserveRPC(method, code string) {
	RPCRequestsTotal.WithLabelValues(method, code).Inc()
}
