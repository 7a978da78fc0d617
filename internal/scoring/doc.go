// Package scoring computes reputation scores for posts, comments, and users.
//
// A content item's score blends two [0,1] sub-scores: community approval
// (likes vs. dislikes) and the sentiment of comments beneath it, both with
// the item's own author filtered out. Sub-scores stay in [0,1] throughout;
// scaling to the persisted 0..100 integer happens exactly once at the store
// boundary. A user's reputation is the mean of their items' persisted scores.
//
// Failed signal fetches degrade to the neutral default instead of failing
// the run; only author resolution is fatal. The pipeline refreshes the score
// cache after each write so the user cascade never averages a stale value.
package scoring
