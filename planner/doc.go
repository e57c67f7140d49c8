// Package planner answers route queries expressed in percent of the map extent.
//
// A Plan call:
//
//  1. validates the query (each coordinate in [0, 100]);
//  2. converts percent to normalized coordinates (÷100);
//  3. snaps start and goal to their closest nodes with a nearest.Finder;
//  4. runs astar.Search between them;
//  5. reports a Route, logs one record and emits one span plus metrics.
//
// "No route exists" is Route.Found == false with a nil error.
//
// A Planner is safe for concurrent use as long as its Finder is; the finders
// in package nearest are.
package planner
