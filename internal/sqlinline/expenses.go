package sqlinline

const QInsertExpense = `--sql e31c75d9-0b86-42af-95e4-7f2a16c8d054
insert into expenses(id, campaign_id, title, amount, currency, description, beneficiaries, receipt_urls, spent_at, created_at)
values (gen_random_uuid(), $1::uuid, $2::text, $3::numeric, $4::text, $5::text, $6::text, $7::text[], $8::date, now())
returning id, created_at;
`

const QListExpensesByCampaign = `--sql 5a6e02f8-d4c1-49b3-a07d-981c3e56f2ba
select id, campaign_id, title, amount, currency, description, beneficiaries, receipt_urls, spent_at, created_at
from expenses
where campaign_id = $1::uuid
order by created_at desc, id desc;
`
