// Package contact implements the contact form: static field rules,
// validation, and delivery of valid submissions.
//
// Delivery is abstracted behind the Deliverer interface. The default
// SimulatedDeliverer fakes a network round trip with a randomized outcome;
// EmailDeliverer forwards submissions to a notification inbox. Both can be
// combined with MultiDeliverer.
package contact
