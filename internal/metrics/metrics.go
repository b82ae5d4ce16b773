package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	SecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityEvents,
			Help: HelpTextSecurityEvents,
		},
		[]string{LabelEvent},
	)
)

// Business Metrics
var (
	RecipesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesCreated,
			Help: HelpTextRecipesCreated,
		},
	)

	RecipesUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesUpdated,
			Help: HelpTextRecipesUpdated,
		},
	)

	RecipesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesDeleted,
			Help: HelpTextRecipesDeleted,
		},
	)

	CollectionChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCollectionChanges,
			Help: HelpTextCollectionChanges,
		},
		[]string{LabelCollection, LabelAction},
	)

	ShoppingListsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShoppingListsRendered,
			Help: HelpTextShoppingListsRendered,
		},
		[]string{LabelFormat},
	)

	ShoppingListItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameShoppingListItems,
			Help:    HelpTextShoppingListItems,
			Buckets: ShoppingListItemBuckets,
		},
	)

	SubscriptionChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSubscriptionChanges,
			Help: HelpTextSubscriptionChanges,
		},
		[]string{LabelAction},
	)

	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoginAttempts,
			Help: HelpTextLoginAttempts,
		},
		[]string{LabelResult},
	)

	ImagesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameImagesStored,
			Help: HelpTextImagesStored,
		},
		[]string{LabelDirectory},
	)

	UserCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUserCacheLookups,
			Help: HelpTextUserCacheLookups,
		},
		[]string{LabelResult},
	)
)
