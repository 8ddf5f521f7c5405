package catalog

// Package catalog implements the browser's view pipeline over the persisted
// sample catalog: the injected Store contract, the filter predicate engine,
// the sort comparator, and the mutator that applies enable/remove/add
// operations and persists them through the store.
