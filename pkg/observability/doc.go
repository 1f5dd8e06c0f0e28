/*
Package observability provides tools for monitoring the Tendril engine.

It exposes Prometheus instruments fed by the engine's lifecycle hooks:
finished simulations by status, configurations explored, depth reached,
frontier sizes and run durations. The instruments live on a private registry
served via Handler, and Combine merges the metric hooks with any hooks the
embedding program already uses.
*/
package observability
