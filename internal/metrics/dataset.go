package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Dataset Prometheus metrics.
var (
	DatasetSites = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "sakhi",
			Name:      "dataset_sites",
			Help:      "Number of sites in the loaded dataset",
		},
		[]string{"type"},
	)

	DatasetValid = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sakhi",
			Name:      "dataset_valid",
			Help:      "Whether the loaded dataset passed validation (1 = valid)",
		},
	)

	DatasetInvalidRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sakhi",
			Name:      "dataset_invalid_records",
			Help:      "Number of records rejected by validation",
		},
	)

	DatasetFlaggedRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sakhi",
			Name:      "dataset_flagged_records",
			Help:      "Number of valid records carrying warnings or advisories",
		},
	)

	DatasetLoadedTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sakhi",
			Name:      "dataset_loaded_timestamp_seconds",
			Help:      "Unix time when the dataset snapshot was loaded",
		},
	)
)

var datasetMetricsRegistered bool

// RegisterDatasetMetrics registers Prometheus dataset metrics. Must be called once from main.
func RegisterDatasetMetrics() {
	if datasetMetricsRegistered {
		return
	}
	prometheus.MustRegister(DatasetSites)
	prometheus.MustRegister(DatasetValid)
	prometheus.MustRegister(DatasetInvalidRecords)
	prometheus.MustRegister(DatasetFlaggedRecords)
	prometheus.MustRegister(DatasetLoadedTimestamp)
	datasetMetricsRegistered = true
}

// ObserveDataset publishes the state of a loaded dataset snapshot.
func ObserveDataset(temples, gurdwaras, invalid, flagged int, valid bool) {
	DatasetSites.WithLabelValues("temple").Set(float64(temples))
	DatasetSites.WithLabelValues("gurdwara").Set(float64(gurdwaras))
	DatasetInvalidRecords.Set(float64(invalid))
	DatasetFlaggedRecords.Set(float64(flagged))
	if valid {
		DatasetValid.Set(1)
	} else {
		DatasetValid.Set(0)
	}
	DatasetLoadedTimestamp.Set(float64(time.Now().Unix()))
}
