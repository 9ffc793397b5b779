// Package outcome normalizes whatever application logic returns into a
// uniform HTTP response. Handlers build an Outcome through one of its
// constructors and hand it to Resolve, which owns every status code, header
// and body encoding decision:
//
//	func getProduct(ctx handler.Context) handler.Response {
//		bv, err := registry.BindValue(ctx, raw, desc)
//		if err != nil {
//			return response.Error(err) // collaborator fault -> 5xx
//		}
//		if !bv.OK() {
//			return outcome.Resolve(outcome.BindFailure(*bv.Invalid))
//		}
//		return outcome.Resolve(outcome.Value(bv.Value))
//	}
//
// Variants and their resolution:
//
//	Value(v)            -> 200, JSON body
//	Status(code)        -> code, empty body
//	StatusWith(code, v) -> code, JSON body
//	Created(loc, v)     -> 201, Location header, JSON body
//	NotFound()          -> 404, empty body
//	Invalid(ve)         -> 400, per-field error body
//	Stream(ch)          -> 200, NDJSON, flushed per element
//
// Exactly one variant is ever populated; a zero-value Outcome resolves to a
// 500 rather than a silent empty success.
package outcome
