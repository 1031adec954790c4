package stores

import (
	"document-manager/config"
	"document-manager/core"
	"document-manager/stores/memory"
	"document-manager/stores/syncmap"

	"github.com/sirupsen/logrus"
)

func GetStore(cfg config.Config) core.DocumentStore {
	logrus.SetLevel(cfg.LogLevel)

	var opts []core.StoreOption
	if cfg.PreserveCreated {
		opts = append(opts, core.WithPreserveCreated())
	}

	var store core.DocumentStore
	storageField := logrus.Fields{
		"storageType":     cfg.StoreType,
		"preserveCreated": cfg.PreserveCreated,
	}

	switch cfg.StoreType {
	case "syncmap":
		store = syncmap.NewDocumentStore(opts...)
	default:
		store = memory.NewDocumentStore(opts...)
		storageField["storageType"] = "in-memory"
	}
	logrus.WithFields(storageField).Info("Use storage")
	return store
}

// NewFromEnv loads the configuration from the environment and builds the store it names.
func NewFromEnv() (core.DocumentStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return GetStore(cfg), nil
}
