// Package widgets renders individual form controls as HTML5 markup. Widgets
// read a field's declared validators to derive attributes the browser can
// enforce (required, min, max, minlength, pattern) without ever executing
// the validators themselves. Caller-supplied attributes always win over
// derived ones, and derived ones win over constructor options. A registry
// maps fields to widgets through explicit hints or prioritized matchers.
package widgets
