package db

import "github.com/hibiki-board/hibiki/common"

// RepliesTo returns the posts that referenced the given post in their text
// bodies. Used for rendering back-links.
func RepliesTo(board string, id uint64) (replies []common.Reply, err error) {
	r, err := sq.Select("reply_id", "reply_board", "reply_thread").
		From("replies").
		Where("message_board = ? and message_id = ?", board, id).
		OrderBy("reply_id").
		Query()
	if err != nil {
		return
	}
	defer r.Close()

	for r.Next() {
		var rep common.Reply
		err = r.Scan(&rep.ID, &rep.Board, &rep.Thread)
		if err != nil {
			return
		}
		replies = append(replies, rep)
	}
	err = r.Err()
	return
}
