// Package item defines the three kinds of items the service loads (friends,
// payment cards, and money transfers) and the display form every loaded item
// is turned into before it reaches a consumer.
//
// Entities are plain immutable values created by a backend collaborator and
// discarded once mapped to a DisplayItem.
package item
