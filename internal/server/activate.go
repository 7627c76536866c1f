package server

import (
	"github.com/uilens-dev/uilens/internal/batch"
	"github.com/uilens-dev/uilens/internal/config"
	"github.com/uilens-dev/uilens/internal/hierarchy"
	"github.com/uilens-dev/uilens/internal/rendertree"
)

// Activation batch sizes: a full-page activation can cover thousands of
// elements, so walking and path-building are sliced separately.
const (
	elementBatchSize = 20
	pathBatchSize    = 10
)

type walkedElement struct {
	element      activationElement
	observations []rendertree.Observation
}

// handleActivate walks every anchor in the snapshot and builds its two path
// strings, yielding between batches. Anchors missing from the snapshot are
// treated as a no-op: the overlay may have been torn down while this
// activation was in flight.
func (s *Server) handleActivate(msg inboundMessage, send func(outboundMessage)) {
	snapshot := rendertree.DecodeSnapshot(msg.Tree)
	walked := make([]walkedElement, 0, len(msg.Elements))

	batch.Run(s.scheduler, msg.Elements, elementBatchSize, func(chunk []activationElement) {
		for _, element := range chunk {
			node := snapshot.Node(element.NodeID)
			if node == nil && element.Leaf == "" {
				continue
			}
			var observations []rendertree.Observation
			if node != nil {
				observations = rendertree.Walk(node, rendertree.DefaultMaxDepth, s.session)
			}
			walked = append(walked, walkedElement{element: element, observations: observations})
		}
	}, func() {
		s.buildPaths(msg, walked, send)
	})
}

func (s *Server) buildPaths(msg inboundMessage, walked []walkedElement, send func(outboundMessage)) {
	simple := s.session.Mode() == config.ModeSimple
	results := make([]hierarchyElement, 0, len(walked))

	batch.Run(s.scheduler, walked, pathBatchSize, func(chunk []walkedElement) {
		for _, item := range chunk {
			builder := &hierarchy.Builder{Ref: s.session}
			if levels, ok := msg.DOMAncestors[item.element.ID]; ok {
				builder.Scanner = ancestorList(levels)
			}
			full, filtered := builder.Build(item.observations, item.element.Leaf)
			result := hierarchyElement{ID: item.element.ID, Full: full, Filtered: filtered}
			if simple {
				result.Full = ""
			}
			results = append(results, result)
		}
	}, func() {
		send(outboundMessage{Type: "hierarchy", Elements: results})
	})
}
