// Package anim schedules the entrance animation of chart primitives.
//
// A render pass produces a Batch of Tasks (Plan). The batch waits behind a
// visibility Gate and a Lifecycle state machine, then a Scheduler turns
// wall-clock ticks into Frames: per-target values the presentation layer
// applies to its elements. Nothing here draws; see the view package for the
// glue between geometry, scheduler and surface.
//
// Three animation styles exist:
//   - independent: every primitive grows on its own eased timer, started
//     index*stagger after the batch
//   - stack: one timer per category stack, its eased progress distributed
//     across the segments so the stack fills bottom-up
//   - sweep: pie and donut charts are revealed by one clip wedge growing
//     clockwise from 12 o'clock
package anim
